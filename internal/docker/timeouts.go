package docker

import "time"

const (
	ImagePullTimeout   = 10 * time.Minute
	ContainerOpTimeout = 30 * time.Second
	StatsTimeout       = 15 * time.Second
)
