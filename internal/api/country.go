package api

import "hiking-planner/internal/model"

// CreateCountryRequest 建立國家參考資料
// swagger:model CreateCountryRequest
type CreateCountryRequest struct {
	Name string `json:"name" form:"name" validate:"required" example:"Serbia"`
	Code string `json:"code" form:"code" validate:"required" example:"RS"`
}

// UpdateCountryRequest 更新國家參考資料
// swagger:model UpdateCountryRequest
type UpdateCountryRequest struct {
	Name   string               `json:"name" form:"name" validate:"required" example:"Serbia"`
	Code   string               `json:"code" form:"code" validate:"required" example:"RS"`
	States []model.CountryState `json:"states" form:"states" validate:"required"`
}

// CountryData 單一國家的 data 內容
// swagger:model CountryData
type CountryData struct {
	Country *model.Country `json:"country"`
}

// CountriesData 國家清單的 data 內容
// swagger:model CountriesData
type CountriesData struct {
	Countries []model.Country `json:"countries"`
}
