package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"calzado/internal/catalog"
	"calzado/internal/repositories"
	"calzado/internal/services"
)

// statusForError maps service errors onto HTTP statuses. Invalid parameters
// are the caller's fault, missing records are a normal 404, and everything
// else (store failures included) surfaces as a 500 so "no results" is never
// conflated with "query failed".
func statusForError(err error) int {
	switch {
	case errors.Is(err, catalog.ErrInvalidPageSize),
		errors.Is(err, catalog.ErrUnknownSortKey),
		errors.Is(err, services.ErrInvalidQuery),
		errors.Is(err, services.ErrBrandNameTaken):
		return fiber.StatusBadRequest
	case errors.Is(err, repositories.ErrProductNotFound),
		errors.Is(err, repositories.ErrBrandNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
