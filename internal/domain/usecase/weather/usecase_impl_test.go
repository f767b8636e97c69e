package weather

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"weather-reviewer/internal/domain/gateway/api"
	"weather-reviewer/internal/domain/model/external"
)

type mockWeatherGateway struct {
	mock.Mock
}

func (m *mockWeatherGateway) GetCurrentWeather(city string, apiKey string) (*external.CurrentWeatherResponse, error) {
	args := m.Called(city, apiKey)
	resp, _ := args.Get(0).(*external.CurrentWeatherResponse)
	return resp, args.Error(1)
}

func TestFetchDescription_ReturnsFirstCondition(t *testing.T) {
	gateway := new(mockWeatherGateway)
	gateway.On("GetCurrentWeather", "Hyderabad", "K").Return(&external.CurrentWeatherResponse{
		Name: "Hyderabad",
		Weather: []external.WeatherCondition{
			{ID: 800, Main: "Clear", Description: "clear sky"},
			{ID: 701, Main: "Mist", Description: "mist"},
		},
	}, nil).Once()

	description, err := NewWeatherUseCase(gateway).FetchDescription("Hyderabad", "K")

	require.NoError(t, err)
	assert.Equal(t, "clear sky", description)
	gateway.AssertExpectations(t)
}

func TestFetchDescription_EmptyWeatherList(t *testing.T) {
	gateway := new(mockWeatherGateway)
	gateway.On("GetCurrentWeather", "Paris", "K").Return(&external.CurrentWeatherResponse{Weather: []external.WeatherCondition{}}, nil)

	description, err := NewWeatherUseCase(gateway).FetchDescription("Paris", "K")

	assert.Empty(t, description)
	assert.True(t, errors.Is(err, ErrNoWeatherCondition))
}

func TestFetchDescription_MissingWeatherList(t *testing.T) {
	gateway := new(mockWeatherGateway)
	gateway.On("GetCurrentWeather", "Paris", "K").Return(&external.CurrentWeatherResponse{Name: "Paris"}, nil)

	_, err := NewWeatherUseCase(gateway).FetchDescription("Paris", "K")

	assert.True(t, errors.Is(err, ErrNoWeatherCondition))
}

func TestFetchDescription_GatewayError(t *testing.T) {
	gateway := new(mockWeatherGateway)
	gateway.On("GetCurrentWeather", "Paris", "bad").Return(nil, &api.ResponseError{StatusCode: 401, Message: "Invalid API key"})

	_, err := NewWeatherUseCase(gateway).FetchDescription("Paris", "bad")

	require.Error(t, err)
	var responseErr *api.ResponseError
	require.True(t, errors.As(err, &responseErr))
	assert.Equal(t, 401, responseErr.StatusCode)
	assert.False(t, errors.Is(err, ErrNoWeatherCondition))
	gateway.AssertNumberOfCalls(t, "GetCurrentWeather", 1)
}

func TestFetchDescription_WrapsGatewayErrorOnce(t *testing.T) {
	gateway := new(mockWeatherGateway)
	gateway.On("GetCurrentWeather", "Paris", "K").Return(nil, errors.New("failed to get current weather: connection refused"))

	_, err := NewWeatherUseCase(gateway).FetchDescription("Paris", "K")

	require.Error(t, err)
	assert.Equal(t, "city Paris: failed to get current weather: connection refused", err.Error())
}
