package models

import "time"

// Custom field types.
const (
	FieldTypeText         = "Text"
	FieldTypeSingleSelect = "SingleSelect"
	FieldTypeMultiSelect  = "MultiSelect"
	FieldTypeNumber       = "Number"
	FieldTypeDropdown     = "Dropdown"
)

// CustomFieldDefinition declares an organization-scoped field that tasks can
// carry values for. Names are unique within the organization.
type CustomFieldDefinition struct {
	CustomFieldID  string    `json:"custom_field_id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	FieldType      string    `json:"field_type"`
	CreatedAt      time.Time `json:"created_at"`
	IsActive       bool      `json:"is_active"`
}

// CustomFieldValue assigns a field value to exactly one task or subtask.
// CreatedAt equals the host's creation time, which keeps it at or after the
// definition's CreatedAt.
type CustomFieldValue struct {
	CustomFieldValueID string    `json:"custom_field_value_id"`
	CustomFieldID      string    `json:"custom_field_id"`
	TaskID             *string   `json:"task_id"`
	SubtaskID          *string   `json:"subtask_id"`
	Value              string    `json:"value"`
	CreatedAt          time.Time `json:"created_at"`
}
