package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	analyticsHTTP "github.com/ayushgupta5924/quickbucks/internal/analytics/delivery/http"
	analyticsUC "github.com/ayushgupta5924/quickbucks/internal/analytics/usecase"
	"github.com/ayushgupta5924/quickbucks/internal/extractor"
	"github.com/ayushgupta5924/quickbucks/internal/insight"
	"github.com/ayushgupta5924/quickbucks/internal/middleware"
	taskHTTP "github.com/ayushgupta5924/quickbucks/internal/task/delivery/http"
	taskRepo "github.com/ayushgupta5924/quickbucks/internal/task/repository/postgre"
	taskUC "github.com/ayushgupta5924/quickbucks/internal/task/usecase"
	userHTTP "github.com/ayushgupta5924/quickbucks/internal/user/delivery/http"
	userRepo "github.com/ayushgupta5924/quickbucks/internal/user/repository/postgre"
	userUC "github.com/ayushgupta5924/quickbucks/internal/user/usecase"
	"github.com/ayushgupta5924/quickbucks/pkg/datemath"
)

// setupUserDomain initializes the user domain and registers /api/v1/auth.
func (srv *HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := userRepo.New(srv.postgresDB, srv.l)
	uc := userUC.New(repo, srv.jwtManager, srv.l)
	h := userHTTP.New(srv.l, uc)

	userHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}

// setupTaskDomain initializes the task domain and registers /api/v1/tasks.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	dates, err := datemath.NewParser(srv.cfg.Parser.Timezone)
	if err != nil {
		return err
	}
	ext := extractor.New(extractor.NewRules(extractor.Overrides{
		CategoryKeywords: srv.cfg.Parser.CategoryKeywords,
		UrgencyKeywords:  srv.cfg.Parser.UrgencyKeywords,
		StripVerbs:       srv.cfg.Parser.StripVerbs,
		Strategy:         srv.cfg.Parser.Strategy,
	}), dates)

	repo := taskRepo.New(srv.postgresDB, srv.l)
	users := userRepo.New(srv.postgresDB, srv.l)
	uc := taskUC.New(repo, users, ext, srv.l)
	h := taskHTTP.New(srv.l, uc)

	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered (parser strategy: %s)", srv.cfg.Parser.Strategy)
	return nil
}

// setupAnalyticsDomain initializes analytics and registers /api/v1/analytics.
func (srv *HTTPServer) setupAnalyticsDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	engine := insight.NewEngine(insight.Config{
		MaxInsights:     srv.cfg.Insights.MaxInsights,
		FullAnalysisMin: srv.cfg.Insights.FullAnalysisMin,
		TimePatternMin:  srv.cfg.Insights.TimePatternMin,
		RecentWindow:    srv.cfg.Insights.RecentWindow,
	})

	repo := taskRepo.New(srv.postgresDB, srv.l)
	uc := analyticsUC.New(repo, engine, srv.cfg.Insights.CacheTTL, srv.l)
	h := analyticsHTTP.New(srv.l, uc)

	analyticsHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Analytics domain registered")
	return nil
}
