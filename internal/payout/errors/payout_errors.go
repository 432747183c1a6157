package payouterrors

import (
	"net/http"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/shared/apperror"
)

var (
	ErrAnoMesRequired = apperror.New(
		apperror.CodeInvalidInput,
		"ano_mes is required",
		http.StatusBadRequest,
	)
	ErrPayoutNotFound = apperror.New(
		apperror.CodeNotFound,
		"payout row not found",
		http.StatusNotFound,
	)
)
