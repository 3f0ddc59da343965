package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"materialku_backend/internals/features/lembaga/offices/model"
)

var validate = validator.New()

type OfficeRequest struct {
	OfficeName string `json:"office_name" validate:"required,min=1,max=100"`
}

func (r *OfficeRequest) Validate() error {
	r.OfficeName = strings.TrimSpace(r.OfficeName)
	return validate.Struct(r)
}

func (r *OfficeRequest) ToModel() *model.OfficeModel {
	return &model.OfficeModel{OfficeName: r.OfficeName}
}
