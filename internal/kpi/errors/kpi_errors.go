package kpierrors

import (
	"net/http"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/shared/apperror"
)

var (
	ErrKPINotFound = apperror.New(
		apperror.CodeNotFound,
		"kpi row not found",
		http.StatusNotFound,
	)
	ErrInvalidKPIID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid kpi id",
		http.StatusBadRequest,
	)
)
