package reply

import (
	"context"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"weapon_market/pkg/contextx"
	"weapon_market/pkg/errcodes"
	"weapon_market/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	SupportID string `json:"supportId"`
}

func (e *errorResponse) WithDefaultCode(code failure.ErrorCode) {
	if e.Code == "" {
		e.Code = code.String()
	}
}

func (e *errorResponse) WithDefaultMessage(status int) {
	if e.Error == "" {
		e.Error = http.StatusText(status)
	}
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// RawJSON writes an already encoded JSON document as is.
func RawJSON(ctx context.Context, w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if _, err := w.Write(body); err != nil {
		logger(ctx).Error("w.Write", logx.Error(err))
	}
}

func Unauthorized(ctx context.Context, w http.ResponseWriter) {
	response := errorResponse{
		Code:      errcodes.AccessTokenInvalid.String(),
		SupportID: supportID(ctx),
	}
	response.WithDefaultMessage(http.StatusUnauthorized)

	JSON(ctx, w, http.StatusUnauthorized, response)
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	logger(ctx).Error("error", logx.Error(err))

	response := errorResponse{
		Code:      failure.Code(err).String(),
		Error:     failure.Description(err),
		SupportID: supportID(ctx),
	}

	switch {
	case failure.IsInvalidArgumentError(err):
		response.WithDefaultCode(errcodes.ValidationError)
		response.WithDefaultMessage(http.StatusBadRequest)
		JSON(ctx, w, http.StatusBadRequest, response)
	case failure.IsNotFoundError(err):
		response.WithDefaultCode(errcodes.NotFound)
		response.WithDefaultMessage(http.StatusNotFound)
		JSON(ctx, w, http.StatusNotFound, response)
	case failure.IsUnauthorizedError(err):
		response.WithDefaultMessage(http.StatusUnauthorized)
		JSON(ctx, w, http.StatusUnauthorized, response)
	case failure.IsForbiddenError(err):
		response.WithDefaultCode(errcodes.Forbidden)
		response.WithDefaultMessage(http.StatusForbidden)
		JSON(ctx, w, http.StatusForbidden, response)
	case failure.IsConflictError(err):
		response.WithDefaultMessage(http.StatusConflict)
		JSON(ctx, w, http.StatusConflict, response)
	case failure.IsUnprocessableEntityError(err):
		response.WithDefaultMessage(http.StatusUnprocessableEntity)
		JSON(ctx, w, http.StatusUnprocessableEntity, response)
	default:
		// Внутренние ошибки наружу не отдаём: причина остаётся только в логах.
		JSON(ctx, w, http.StatusInternalServerError, errorResponse{
			Error:     http.StatusText(http.StatusInternalServerError),
			Code:      errcodes.InternalServerError.String(),
			SupportID: supportID(ctx),
		})
	}
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
