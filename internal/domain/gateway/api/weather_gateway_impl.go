package api

import (
	"errors"
	"fmt"

	"weather-reviewer/internal/domain/model/external"
	"weather-reviewer/pkg/http"
)

const (
	currentWeatherPath = "/weather"
	apiKeyParam        = "appid"
)

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client.
// Redirects are always followed and the API key is masked in logs and errors.
func NewWeatherGateway(baseUrl string, clientOptions http.ClientOptions) WeatherGateway {
	clientOptions.FollowRedirect = true
	clientOptions.SensitiveParams = append(clientOptions.SensitiveParams, apiKeyParam)
	if clientOptions.Logger == nil {
		clientOptions.Logger = http.NewZapHTTPLogger(apiKeyParam)
	}

	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// GetCurrentWeather issues GET {baseUrl}/weather?q={city}&appid={apiKey}
func (w *weatherGatewayImpl) GetCurrentWeather(city string, apiKey string) (*external.CurrentWeatherResponse, error) {
	successResponse, errResp, status, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath(currentWeatherPath).
		WithQueryParam("q", city).
		WithQueryParam(apiKeyParam, apiKey).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.OpenWeatherErrorResponse{}).
		Execute()

	if err == nil {
		return successResponse.(*external.CurrentWeatherResponse), nil
	}

	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		responseErr := &ResponseError{StatusCode: status}
		if errResp != nil {
			responseErr.Message = errResp.(*external.OpenWeatherErrorResponse).Message
		}
		return nil, responseErr
	}

	return nil, fmt.Errorf("failed to get current weather: %w", err)
}
