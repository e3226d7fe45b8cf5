package handlers

import (
	"net/http"

	"github.com/afrihackbox/mssp/internal/pkg/errors"
	"github.com/afrihackbox/mssp/internal/pkg/utils"
)

// respondError writes err as a JSON error body. Anything that is not an
// AppError is reported as an internal fault.
func respondError(w http.ResponseWriter, err error) {
	utils.WriteError(w, errors.AsAppError(err))
}
