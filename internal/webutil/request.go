package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go_dream_keep/internal/model"

	"github.com/go-playground/validator/v10"
)

// DecodeJSONBody はリクエストボディを dst にデコードし、validate タグで検証します
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディが必要です。", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
	}
	return ValidateStruct(dst)
}

// ValidateStruct は validate タグで検証し、失敗時は VALIDATION_ERROR の AppError を返します
func ValidateStruct(v interface{}) error {
	if err := Validator.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return NewValidationErrorResponse(verrs)
		}
		return model.NewAppError("VALIDATION_ERROR", "入力値が正しくありません。", "", fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
	}
	return nil
}

// QueryInt はクエリパラメータ name を整数として読みます。未指定は 0
func QueryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.NewAppError("INVALID_QUERY_PARAMETER", fmt.Sprintf("%sは整数で指定してください。", fieldLabel(name)), name, model.ErrInvalidInput)
	}
	return v, nil
}
