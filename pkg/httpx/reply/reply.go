package reply

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"ebay_pricer/internal/domain"
	"ebay_pricer/pkg/contextx"
	"ebay_pricer/pkg/errcodes"
	"ebay_pricer/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

func (e *errorResponse) WithDefaultCode(code errcodes.ErrorCode) {
	if e.Code == "" {
		e.Code = code.String()
	}
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	code, _ := domain.GetCode(err)

	response := errorResponse{
		Code:      code.String(),
		Message:   domain.Description(err),
		SupportID: supportID(ctx),
	}

	switch {
	case domain.IsKind(err, domain.KindInvalidArgument):
		logger(ctx).Warn("invalid argument", logx.Error(err))
		response.WithDefaultCode(errcodes.ValidationError)
		JSON(ctx, w, http.StatusBadRequest, response)
	case domain.IsKind(err, domain.KindUnprocessable):
		logger(ctx).Warn("unprocessable", logx.Error(err))
		JSON(ctx, w, http.StatusUnprocessableEntity, response)
	case domain.IsKind(err, domain.KindNotFound):
		response.WithDefaultCode(errcodes.NotFound)
		JSON(ctx, w, http.StatusNotFound, response)
	case domain.IsKind(err, domain.KindUnavailable):
		logger(ctx).Error("dependency unavailable", logx.Error(err))
		JSON(ctx, w, http.StatusServiceUnavailable, response)
	default:
		logger(ctx).Error("error", logx.Error(err))
		response.WithDefaultCode(errcodes.InternalServerError)
		response.Message = "internal server error"
		JSON(ctx, w, http.StatusInternalServerError, response)
	}
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
