package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// TaskCampaignMetricsRefreshAll sweeps every active published campaign.
const TaskCampaignMetricsRefreshAll = "campaigns.metrics.refresh_all"

// TaskCampaignMetricsRefresh refreshes a single campaign's metrics.
const TaskCampaignMetricsRefresh = "campaigns.metrics.refresh"

type CampaignMetricsRefreshPayload struct {
	CampaignID string `json:"campaignId"`
}

func NewCampaignMetricsRefreshAllTask() *asynq.Task {
	return asynq.NewTask(TaskCampaignMetricsRefreshAll, nil)
}

func NewCampaignMetricsRefreshTask(payload CampaignMetricsRefreshPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCampaignMetricsRefresh, data), nil
}

func ParseCampaignMetricsRefreshPayload(task *asynq.Task) (CampaignMetricsRefreshPayload, error) {
	var payload CampaignMetricsRefreshPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return CampaignMetricsRefreshPayload{}, err
	}
	return payload, nil
}
