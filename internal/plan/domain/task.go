package domain

import (
	"time"

	"gorm.io/datatypes"
)

// InputType describes what kind of input was provided for AI processing.
type InputType string

const (
	InputImage InputType = "Image"
	InputText  InputType = "Text"
	InputOther InputType = "Other"
)

// Valid reports whether t is a known input type.
func (t InputType) Valid() bool {
	switch t {
	case InputImage, InputText, InputOther:
		return true
	}
	return false
}

// TaskKind is the AI job being performed.
type TaskKind string

const (
	TaskPlantRecommendation TaskKind = "PlantRecommendation"
	TaskDiseaseDetection    TaskKind = "DiseaseDetection"
	TaskWateringSchedule    TaskKind = "WateringSchedule"
	TaskGeneralAdvice       TaskKind = "GeneralAdvice"
	TaskGardenLayout        TaskKind = "GardenLayout"
)

// Valid reports whether k is a known task kind.
func (k TaskKind) Valid() bool {
	switch k {
	case TaskPlantRecommendation, TaskDiseaseDetection, TaskWateringSchedule,
		TaskGeneralAdvice, TaskGardenLayout:
		return true
	}
	return false
}

// Status tracks a task through the worker pipeline.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusCompleted  Status = "Completed"
	StatusFailed     Status = "Failed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// PlanTask is a stored AI request and its (eventual) result.
type PlanTask struct {
	ID        string         `json:"id" gorm:"primaryKey"`
	UserID    string         `json:"user" gorm:"index;not null"`
	GardenID  string         `json:"garden,omitempty" gorm:"index"`
	InputType InputType      `json:"inputType" gorm:"not null"`
	InputData string         `json:"inputData" gorm:"not null"`
	Task      TaskKind       `json:"task" gorm:"not null"`
	Result    datatypes.JSON `json:"result,omitempty"`
	Status    Status         `json:"status" gorm:"default:Pending"`
	Error     string         `json:"error,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
