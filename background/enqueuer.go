package background

import (
	"encoding/json"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"

	"github.com/wingmate-nz/companion-api/schema"
)

// TaskEnqueuer hands confirmed matches off to the background workers.
// It satisfies the matcher's notifier contract: enqueueing is
// fire-and-forget and a broker failure is reported back only so the
// caller can log it.
type TaskEnqueuer struct {
	taskServer *machinery.Server
}

func NewTaskEnqueuer(taskServer *machinery.Server) *TaskEnqueuer {
	return &TaskEnqueuer{taskServer: taskServer}
}

func (e *TaskEnqueuer) NotifyMatchConfirmed(requester, helper string, domain schema.Domain, details map[string]interface{}) error {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return err
	}

	if _, err := e.taskServer.SendTask(&tasks.Signature{
		Name: TaskNotifyMatchConfirmed,
		Args: []tasks.Arg{
			{Type: "string", Value: requester},
			{Type: "string", Value: helper},
			{Type: "string", Value: string(domain)},
			{Type: "string", Value: string(detailsJSON)},
		},
	}); err != nil {
		return err
	}

	_, err = e.taskServer.SendTask(&tasks.Signature{
		Name: TaskRecordMatchConfirmed,
		Args: []tasks.Arg{
			{Type: "string", Value: helper},
		},
	})
	return err
}
