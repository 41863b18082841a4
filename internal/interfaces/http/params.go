package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/matex-app/matex-api/internal/domain"
	"github.com/matex-app/matex-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, s)
	}
	return t, nil
}

// optionalRange lee from/to de la query; ambos ausentes significa "todo",
// uno solo es inválido.
func optionalRange(c *fiber.Ctx) (*repository.DateRange, error) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" && to == "" {
		return nil, nil
	}
	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: from y to van juntos", domain.ErrInvalidInput)
	}
	f, err := parseDate(from)
	if err != nil {
		return nil, err
	}
	t, err := parseDate(to)
	if err != nil {
		return nil, err
	}
	if t.Before(f) {
		return nil, fmt.Errorf("%w: rango de fechas invertido", domain.ErrInvalidInput)
	}
	return &repository.DateRange{From: f, To: t}, nil
}

// requiredRange lee start/end de la query; ambos son obligatorios.
func requiredRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	start, end := c.Query("start"), c.Query("end")
	if start == "" || end == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start y end son requeridos", domain.ErrInvalidInput)
	}
	s, err := parseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := parseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return s, e, nil
}
