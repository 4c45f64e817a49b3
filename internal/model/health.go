package model

import "gopkg.in/guregu/null.v3"

type DatasetHealth struct {
	Kind         string      `json:"kind"`
	File         string      `json:"file"`
	Available    bool        `json:"available"`
	LastModified null.String `json:"last_modified" swaggertype:"string"`
	Error        null.String `json:"error" swaggertype:"string"`
}

type HealthReport struct {
	Healthy  bool            `json:"healthy"`
	Backend  string          `json:"backend"`
	Datasets []DatasetHealth `json:"datasets"`
}
