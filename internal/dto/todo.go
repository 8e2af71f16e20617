package dto

import "strings"

// TodoRequest is the JSON body for creating or updating a todo.
type TodoRequest struct {
	Title       string  `json:"title" binding:"required,notblank,max=255" example:"buy milk"`
	Description *string `json:"description" example:"2%"` // null or omitted = no description
}

// NormalizedTitle returns the title without surrounding whitespace.
func (r TodoRequest) NormalizedTitle() string {
	return strings.TrimSpace(r.Title)
}

// NormalizedDescription maps a blank description to nil, so "no description"
// has a single representation past the transport layer.
func (r TodoRequest) NormalizedDescription() *string {
	if r.Description == nil || strings.TrimSpace(*r.Description) == "" {
		return nil
	}
	d := *r.Description
	return &d
}

type TodoResponse struct {
	ID          string  `json:"id" example:"0190a6e1-7c2e-7b3a-9f00-5b6a1d2c3e4f"`
	Title       string  `json:"title" example:"buy milk"`
	Description *string `json:"description" extensions:"x-nullable"`
	Completed   bool    `json:"completed"`
}

type ListTodosResponse struct {
	Todos []TodoResponse `json:"todos"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"todo not found"`
}
