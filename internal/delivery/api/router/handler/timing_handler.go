package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"adhan/internal/delivery/api/response"
	"adhan/internal/delivery/api/validator"
	deliverycontext "adhan/internal/delivery/context"
	"adhan/internal/domain/entity"
	domainerrors "adhan/internal/domain/errors"
	"adhan/internal/errors"
	"adhan/internal/usecase"
	"adhan/internal/util"
)

// TimingHandlerParams holds dependencies for TimingHandler, injected by Fx.
type TimingHandlerParams struct {
	fx.In

	TimingUC usecase.TimingUsecase
	Logger   *slog.Logger
}

// TimingHandler serves resolved prayer timings
type TimingHandler struct {
	timingUC usecase.TimingUsecase
	logger   *slog.Logger
	now      func() time.Time
}

// NewTimingHandler is the constructor for TimingHandler
func NewTimingHandler(params TimingHandlerParams) *TimingHandler {
	return &TimingHandler{
		timingUC: params.TimingUC,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// timingParams is the query shared by the timing endpoints
type timingParams struct {
	Lat         float64 `query:"lat" validate:"latitude"`
	Lon         float64 `query:"lon" validate:"longitude"`
	Timezone    string  `query:"tz" validate:"required,timezone"`
	CountryCode string  `query:"cc" validate:"omitempty,len=2,alpha"`
	Date        string  `query:"date" validate:"omitempty,datetime=2006-01-02"`
	Year        int     `query:"year" validate:"omitempty,min=1970,max=2200"`
	Month       int     `query:"month" validate:"omitempty,min=1,max=12"`
}

func (p timingParams) query() usecase.TimingQuery {
	return usecase.TimingQuery{Lat: p.Lat, Lon: p.Lon, Timezone: p.Timezone, CountryCode: p.CountryCode}
}

// PrayerTimeView is one prayer of a day
type PrayerTimeView struct {
	Name       entity.Prayer `json:"name"`
	Time       string        `json:"time"`
	At         time.Time     `json:"at"`
	Notifiable bool          `json:"notifiable"`
}

// DayTimingsView is the rendering of one resolved day
type DayTimingsView struct {
	Date     string           `json:"date"`
	Timezone string           `json:"timezone"`
	Source   string           `json:"source"`
	Timings  entity.TimingSet `json:"timings"`
	Prayers  []PrayerTimeView `json:"prayers"`
}

func newDayTimingsView(day *entity.DayTimings) (*DayTimingsView, error) {
	instants, err := day.Instants()
	if err != nil {
		return nil, err
	}

	prayers := make([]PrayerTimeView, 0, len(instants))
	for _, inst := range instants {
		prayers = append(prayers, PrayerTimeView{
			Name:       inst.Name,
			Time:       day.Set.Clock(inst.Name),
			At:         inst.At,
			Notifiable: inst.Name.Notifiable(),
		})
	}

	return &DayTimingsView{
		Date:     day.Date.Format(time.DateOnly),
		Timezone: day.Location.String(),
		Source:   day.Source,
		Timings:  day.Set,
		Prayers:  prayers,
	}, nil
}

func (h *TimingHandler) bind(c echo.Context) (*timingParams, error) {
	var p timingParams
	if err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &p.Lat).
		MustFloat64("lon", &p.Lon).
		String("tz", &p.Timezone).
		String("cc", &p.CountryCode).
		String("date", &p.Date).
		Int("year", &p.Year).
		Int("month", &p.Month).
		BindError(); err != nil {
		return nil, response.BadRequest(c, "INVALID_INPUT", "lat and lon are required numbers")
	}
	if err := c.Validate(&p); err != nil {
		return nil, response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.FieldErrors(err))
	}

	return &p, nil
}

// GetTimings handles GET /api/timings
func (h *TimingHandler) GetTimings(c echo.Context) error {
	p, err := h.bind(c)
	if p == nil {
		return err
	}

	date := h.now()
	if p.Date != "" {
		loc, _ := util.LoadLocation(p.Timezone)
		date, _ = time.ParseInLocation(time.DateOnly, p.Date, loc)
		date = date.Add(12 * time.Hour)
	}

	day, err := h.timingUC.GetTimings(c.Request().Context(), p.query(), date)
	if err != nil {
		return response.HandleAppError(c, h.timingsError(c, err))
	}

	view, err := newDayTimingsView(day)
	if err != nil {
		return response.HandleAppError(c, h.timingsError(c, err))
	}

	return response.Success(c, http.StatusOK, view)
}

// GetMonthTimings handles GET /api/timings/month
func (h *TimingHandler) GetMonthTimings(c echo.Context) error {
	p, err := h.bind(c)
	if p == nil {
		return err
	}

	loc, _ := util.LoadLocation(p.Timezone)
	now := h.now().In(loc)
	year, month := now.Year(), now.Month()
	if p.Year != 0 {
		year = p.Year
	}
	if p.Month != 0 {
		month = time.Month(p.Month)
	}

	days, err := h.timingUC.GetMonthTimings(c.Request().Context(), p.query(), year, month)
	if err != nil {
		return response.HandleAppError(c, h.timingsError(c, err))
	}

	views := make([]*DayTimingsView, 0, len(days))
	for _, day := range days {
		view, err := newDayTimingsView(day)
		if err != nil {
			continue
		}
		views = append(views, view)
	}

	return response.Success(c, http.StatusOK, views)
}

// GetNextPrayer handles GET /api/timings/next
func (h *TimingHandler) GetNextPrayer(c echo.Context) error {
	p, err := h.bind(c)
	if p == nil {
		return err
	}

	now := h.now()
	next, err := h.timingUC.NextPrayer(c.Request().Context(), p.query(), now)
	if err != nil {
		return response.HandleAppError(c, h.timingsError(c, err))
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"name":      next.Name,
		"at":        next.At,
		"in_millis": next.At.Sub(now).Milliseconds(),
	})
}

// timingsError keeps domain errors and reports upstream failures as 502.
func (h *TimingHandler) timingsError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Warn("[Timing] resolution failed", slog.Any("error", err))

	return domainerrors.ErrTimingsUnavailable
}
