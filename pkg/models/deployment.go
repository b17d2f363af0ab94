package models

import "time"

type DeployReason string

const (
	DeployReasonInit   DeployReason = "init"
	DeployReasonNuke   DeployReason = "nuke"
	DeployReasonUpdate DeployReason = "update"
)

type Deployment struct {
	ID            string       `json:"id"`
	Stack         string       `json:"stack"`
	Reason        DeployReason `json:"reason"`
	UpdatedImages []string     `json:"updated_images,omitempty"`
	DeployedAt    time.Time    `json:"deployed_at"`
}

type DeploymentRegistry struct {
	Deployments []Deployment `json:"deployments"`
}
