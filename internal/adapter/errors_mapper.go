package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// envelope covers both failure bodies of the API: {"message": ...} from
// register and login, {"error": ...} from everything else.
type envelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

var statusErrors = map[int]error{
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusNotFound:            ErrNotFound,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
	http.StatusGatewayTimeout:      ErrGatewayTimeout,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	message := responseMessage(resp)

	if target, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", target, message)
	}

	return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
}

func responseMessage(resp *resty.Response) string {
	body := resp.Body()

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil {
		if env.Message != "" {
			return env.Message
		}
		if env.Error != "" {
			return env.Error
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}

	return http.StatusText(resp.StatusCode())
}
