package country

import (
	"encoding/json"
	"time"

	"hiking-planner/internal/api"
	"hiking-planner/internal/cache"
	"hiking-planner/internal/database"
	"hiking-planner/internal/model"
	"hiking-planner/internal/store"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 國家清單幾乎不變動，快取一小時，寫入時主動清除
const (
	countriesCacheKey = "countries"
	countriesCacheTTL = time.Hour
)

var (
	createCountry  = store.CreateCountry
	getCountryByID = store.GetCountryByID
	listCountries  = store.ListCountries
	saveCountry    = store.SaveCountry
	deleteCountry  = store.DeleteCountry
)

// @Summary     List countries
// @Description 清單走 Redis 快取，未命中時查庫回填
// @Tags        countries
// @Produce     json
// @Success     200 {object} api.Response{data=api.CountriesData}
// @Router      /countries [get]
func ListCountriesHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if raw, err := rdb.Get(ctx, countriesCacheKey).Result(); err == nil {
			var countries []model.Country
			if err := json.Unmarshal([]byte(raw), &countries); err == nil {
				return api.Success(c, api.CountriesData{Countries: countries}, "Countries retrieved successfully!")
			}
		}

		countries, err := listCountries(ctx, db)
		if err != nil {
			return api.ServerError(c, err.Error())
		}
		if payload, err := json.Marshal(countries); err == nil {
			// 回填失敗只影響下一次命中率，不影響回應
			rdb.Set(ctx, countriesCacheKey, payload, countriesCacheTTL)
		}
		return api.Success(c, api.CountriesData{Countries: countries}, "Countries retrieved successfully!")
	}
}

// @Summary     Create a country
// @Tags        countries
// @Accept      json
// @Produce     json
// @Param       request body api.CreateCountryRequest true "國家資料"
// @Success     200 {object} api.Response{data=api.CountryData}
// @Failure     400 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /countries [post]
func CreateCountryHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateCountryRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return api.BadRequest(c, err.Error())
		}

		ctx := c.Request().Context()
		ct, err := createCountry(ctx, db, &model.Country{Name: req.Name, Code: req.Code})
		if err != nil {
			return api.ServerError(c, err.Error())
		}
		rdb.Del(ctx, countriesCacheKey)
		return api.Success(c, api.CountryData{Country: ct}, "Country created successfully!")
	}
}

// @Summary     Update a country
// @Tags        countries
// @Accept      json
// @Produce     json
// @Param       id path string true "國家 ID"
// @Param       request body api.UpdateCountryRequest true "國家資料"
// @Success     200 {object} api.Response{data=api.CountryData}
// @Failure     404 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /countries/{id} [put]
func UpdateCountryHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return api.BadRequest(c, "Invalid country ID.")
		}
		var req api.UpdateCountryRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return api.BadRequest(c, err.Error())
		}

		ctx := c.Request().Context()
		ct, err := getCountryByID(ctx, db, id)
		if err != nil {
			return api.NotFound(c, "Country not found.")
		}
		ct.Name = req.Name
		ct.Code = req.Code
		ct.States = req.States
		if err := saveCountry(ctx, db, ct); err != nil {
			return api.ServerError(c, err.Error())
		}
		rdb.Del(ctx, countriesCacheKey)
		return api.Success(c, api.CountryData{Country: ct}, "Country updated successfully!")
	}
}

// @Summary     Delete a country
// @Tags        countries
// @Produce     json
// @Param       id path string true "國家 ID"
// @Success     200 {object} api.Response
// @Failure     400 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /countries/{id} [delete]
func DeleteCountryHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return api.BadRequest(c, "Invalid country ID.")
		}
		ctx := c.Request().Context()
		if _, err := getCountryByID(ctx, db, id); err != nil {
			return api.BadRequest(c, "Country not found.")
		}
		if err := deleteCountry(ctx, db, id); err != nil {
			return api.ServerError(c, err.Error())
		}
		rdb.Del(ctx, countriesCacheKey)
		return api.Success(c, nil, "Country deleted successfully!")
	}
}
