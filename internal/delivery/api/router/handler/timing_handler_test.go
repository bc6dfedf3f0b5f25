package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adhan/internal/domain/entity"
	domainerrors "adhan/internal/domain/errors"
	"adhan/internal/domain/service"
	mockUsecase "adhan/internal/mocks/usecase"
	"adhan/internal/usecase"
)

var osloQuery = usecase.TimingQuery{Lat: 59.91, Lon: 10.75, Timezone: "Europe/Oslo"}

func newTimingServer(t *testing.T, now time.Time) (*echo.Echo, *mockUsecase.MockTimingUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockTimingUsecase(t)
	h := NewTimingHandler(TimingHandlerParams{TimingUC: uc, Logger: discardLogger()})
	h.now = func() time.Time { return now }

	e := newTestEcho()
	e.GET("/api/timings", h.GetTimings)
	e.GET("/api/timings/month", h.GetMonthTimings)
	e.GET("/api/timings/next", h.GetNextPrayer)

	return e, uc
}

func osloDay(t *testing.T, day int) *entity.DayTimings {
	t.Helper()

	loc, err := time.LoadLocation("Europe/Oslo")
	require.NoError(t, err)

	return &entity.DayTimings{
		Date:     time.Date(2024, time.March, day, 0, 0, 0, 0, loc),
		Location: loc,
		Set: entity.TimingSet{
			Fajr: "04:52", Sunrise: "06:38", Dhuhr: "12:33",
			Asr: "15:26", Maghrib: "17:28", Isha: "19:08",
		},
		Source: "regional",
	}
}

func TestTimingHandler_GetTimings(t *testing.T) {
	e, uc := newTimingServer(t, time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC))

	uc.EXPECT().GetTimings(mock.Anything, osloQuery, mock.MatchedBy(func(d time.Time) bool {
		// Noon of the requested local day.
		return d.Format(time.DateTime) == "2024-03-15 12:00:00" && d.Location().String() == "Europe/Oslo"
	})).Return(osloDay(t, 15), nil)

	rec := doRequest(e, http.MethodGet, "/api/timings?lat=59.91&lon=10.75&tz=Europe/Oslo&date=2024-03-15", "")

	requireStatus(t, http.StatusOK, rec)
	view := decodeData[DayTimingsView](t, rec)
	assert.Equal(t, "2024-03-15", view.Date)
	assert.Equal(t, "Europe/Oslo", view.Timezone)
	assert.Equal(t, "regional", view.Source)
	assert.Equal(t, "17:28", view.Timings.Maghrib)
	require.Len(t, view.Prayers, len(entity.PrayerOrder))
	assert.Equal(t, entity.Sunrise, view.Prayers[1].Name)
	assert.False(t, view.Prayers[1].Notifiable)
	assert.Equal(t, "2024-03-15T16:28:00Z", view.Prayers[4].At.UTC().Format(time.RFC3339))
}

func TestTimingHandler_GetTimingsDefaultsToToday(t *testing.T) {
	now := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
	e, uc := newTimingServer(t, now)

	uc.EXPECT().GetTimings(mock.Anything, osloQuery, now).Return(osloDay(t, 15), nil)

	rec := doRequest(e, http.MethodGet, "/api/timings?lat=59.91&lon=10.75&tz=Europe/Oslo", "")

	requireStatus(t, http.StatusOK, rec)
}

func TestTimingHandler_RejectsQuery(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantCode string
	}{
		{"missing lat", "/api/timings?lon=10.75&tz=Europe/Oslo", "INVALID_INPUT"},
		{"non numeric lon", "/api/timings?lat=59.91&lon=east&tz=Europe/Oslo", "INVALID_INPUT"},
		{"missing timezone", "/api/timings?lat=59.91&lon=10.75", "VALIDATION_FAILED"},
		{"unknown timezone", "/api/timings?lat=59.91&lon=10.75&tz=Nowhere/City", "VALIDATION_FAILED"},
		{"latitude out of range", "/api/timings?lat=91&lon=10.75&tz=UTC", "VALIDATION_FAILED"},
		{"malformed date", "/api/timings?lat=59.91&lon=10.75&tz=UTC&date=15-03-2024", "VALIDATION_FAILED"},
		{"month out of range", "/api/timings/month?lat=59.91&lon=10.75&tz=UTC&month=13", "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTimingServer(t, time.Now())

			rec := doRequest(e, http.MethodGet, tt.target, "")

			requireStatus(t, http.StatusBadRequest, rec)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestTimingHandler_UpstreamFailure(t *testing.T) {
	t.Run("provider error becomes 502", func(t *testing.T) {
		e, uc := newTimingServer(t, time.Now())

		uc.EXPECT().GetTimings(mock.Anything, osloQuery, mock.Anything).Return(nil, service.ErrProviderUnavailable)

		rec := doRequest(e, http.MethodGet, "/api/timings?lat=59.91&lon=10.75&tz=Europe/Oslo", "")

		requireStatus(t, http.StatusBadGateway, rec)
		assert.Equal(t, "TIMINGS_UNAVAILABLE", decodeError(t, rec).Code)
	})

	t.Run("domain error passes through", func(t *testing.T) {
		e, uc := newTimingServer(t, time.Now())

		uc.EXPECT().NextPrayer(mock.Anything, osloQuery, mock.Anything).
			Return(entity.PrayerInstant{}, domainerrors.ErrInvalidTimezone.WithDetails("Europe/Oslo"))

		rec := doRequest(e, http.MethodGet, "/api/timings/next?lat=59.91&lon=10.75&tz=Europe/Oslo", "")

		requireStatus(t, http.StatusBadRequest, rec)
		assert.Equal(t, "INVALID_TIMEZONE", decodeError(t, rec).Code)
	})
}

func TestTimingHandler_GetMonthTimings(t *testing.T) {
	// 23:30 UTC on Feb 29 is already March 1 in Oslo.
	now := time.Date(2024, time.February, 29, 23, 30, 0, 0, time.UTC)

	t.Run("defaults to the current local month", func(t *testing.T) {
		e, uc := newTimingServer(t, now)

		uc.EXPECT().GetMonthTimings(mock.Anything, osloQuery, 2024, time.March).
			Return([]*entity.DayTimings{osloDay(t, 1), osloDay(t, 2)}, nil)

		rec := doRequest(e, http.MethodGet, "/api/timings/month?lat=59.91&lon=10.75&tz=Europe/Oslo", "")

		requireStatus(t, http.StatusOK, rec)
		views := decodeData[[]DayTimingsView](t, rec)
		require.Len(t, views, 2)
		assert.Equal(t, "2024-03-01", views[0].Date)
		assert.Equal(t, "2024-03-02", views[1].Date)
	})

	t.Run("explicit year and month", func(t *testing.T) {
		e, uc := newTimingServer(t, now)

		uc.EXPECT().GetMonthTimings(mock.Anything, osloQuery, 2025, time.June).Return(nil, nil)

		rec := doRequest(e, http.MethodGet, "/api/timings/month?lat=59.91&lon=10.75&tz=Europe/Oslo&year=2025&month=6", "")

		requireStatus(t, http.StatusOK, rec)
		assert.Empty(t, decodeData[[]DayTimingsView](t, rec))
	})
}

func TestTimingHandler_GetNextPrayer(t *testing.T) {
	now := time.Date(2024, time.March, 15, 16, 0, 0, 0, time.UTC)
	e, uc := newTimingServer(t, now)

	maghrib := time.Date(2024, time.March, 15, 16, 28, 0, 0, time.UTC)
	uc.EXPECT().NextPrayer(mock.Anything, osloQuery, now).
		Return(entity.PrayerInstant{Name: entity.Maghrib, At: maghrib}, nil)

	rec := doRequest(e, http.MethodGet, "/api/timings/next?lat=59.91&lon=10.75&tz=Europe/Oslo", "")

	requireStatus(t, http.StatusOK, rec)
	body := decodeData[map[string]any](t, rec)
	assert.Equal(t, "Maghrib", body["name"])
	assert.EqualValues(t, 28*60*1000, body["in_millis"])
}
