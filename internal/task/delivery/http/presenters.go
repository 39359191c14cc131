package http

import (
	"errors"
	"time"

	"github.com/ayushgupta5924/quickbucks/internal/model"
	"github.com/ayushgupta5924/quickbucks/internal/task"
	"github.com/ayushgupta5924/quickbucks/pkg/response"
)

var errInvalidDueDate = errors.New("due_date must be formatted as " + response.DateFormat)

// --- Request DTOs ---

type createReq struct {
	NaturalInput string `json:"natural_input" binding:"omitempty,max=1000"`
	Title        string `json:"title"         binding:"omitempty,max=255"`
	Category     string `json:"category"      binding:"omitempty,oneof=work personal health learning other"`
	Priority     string `json:"priority"      binding:"omitempty,oneof=high medium low"`
	Reward       int64  `json:"reward"        binding:"omitempty,min=0"`
	DueDate      string `json:"due_date"      binding:"omitempty"`
}

func (r createReq) validate() error {
	if r.DueDate != "" {
		if _, err := time.Parse(response.DateFormat, r.DueDate); err != nil {
			return errInvalidDueDate
		}
	}
	return nil
}

func (r createReq) toInput() task.CreateTaskInput {
	input := task.CreateTaskInput{
		NaturalInput: r.NaturalInput,
		Title:        r.Title,
		Category:     r.Category,
		Priority:     r.Priority,
		Reward:       r.Reward,
	}
	if r.DueDate != "" {
		if due, err := time.Parse(response.DateFormat, r.DueDate); err == nil {
			input.DueDate = &due
		}
	}
	return input
}

// ---

type parseReq struct {
	Text string `json:"text" binding:"omitempty,max=1000"`
}

func (r parseReq) toInput() task.ParseTaskInput {
	return task.ParseTaskInput{Text: r.Text}
}

// ---

type listReq struct {
	Completed *bool  `form:"completed"`
	Category  string `form:"category"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) toInput() task.ListTasksInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return task.ListTasksInput{
		Completed: r.Completed,
		Category:  r.Category,
		Limit:     limit,
		Offset:    offset,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Category    string         `json:"category"`
	Priority    string         `json:"priority"`
	Reward      int64          `json:"reward"`
	Completed   bool           `json:"completed"`
	CreatedAt   time.Time      `json:"created_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	DueDate     *response.Date `json:"due_date,omitempty"`
}

func (h *handler) newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Category:    string(t.Category),
		Priority:    string(t.Priority),
		Reward:      t.Reward,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
	}
	if t.DueDate != nil {
		d := response.Date(*t.DueDate)
		resp.DueDate = &d
	}
	return resp
}

type draftResp struct {
	Title    string         `json:"title"`
	Category string         `json:"category"`
	Priority string         `json:"priority"`
	Reward   int64          `json:"reward"`
	DueDate  *response.Date `json:"due_date,omitempty"`
}

func (h *handler) newDraftResp(d model.TaskDraft) draftResp {
	resp := draftResp{
		Title:    d.Title,
		Category: string(d.Category),
		Priority: string(d.Priority),
		Reward:   d.Reward,
	}
	if d.DueDate != nil {
		due := response.Date(*d.DueDate)
		resp.DueDate = &due
	}
	return resp
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = h.newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type completeResp struct {
	Task   taskResp `json:"task"`
	Wallet int64    `json:"wallet"`
}

func (h *handler) newCompleteResp(out task.CompleteTaskOutput) completeResp {
	return completeResp{
		Task:   h.newTaskResp(out.Task),
		Wallet: out.Wallet,
	}
}
