package sogou

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"
)

var (
	errNoErrorCode   = errors.New("response has no errorCode")
	errNoTranslation = errors.New("success response has no translation")
)

// responseCode accepts errorCode both as a JSON string and as a number.
type responseCode string

func (c *responseCode) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := sonic.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = responseCode(s)
		return nil
	}
	if _, err := strconv.ParseInt(string(data), 10, 64); err != nil {
		return fmt.Errorf("errorCode %s is neither a string nor an integer", data)
	}
	*c = responseCode(data)
	return nil
}

type translateResponse struct {
	ErrorCode   *responseCode `json:"errorCode"`
	Query       string        `json:"query"`
	Translation *string       `json:"translation"`
}

// InterpretResponse maps a raw HTTP response to the translated text or a
// typed error. The body is not inspected unless statusCode is 2xx.
func InterpretResponse(statusCode int, body []byte) (string, error) {
	if statusCode < 200 || statusCode > 299 {
		return "", &TransportError{StatusCode: statusCode}
	}

	var resp translateResponse
	if err := sonic.Unmarshal(body, &resp); err != nil {
		return "", &ParseError{Err: err}
	}
	if resp.ErrorCode == nil {
		return "", &ParseError{Err: errNoErrorCode}
	}

	code := string(*resp.ErrorCode)
	if code == CodeSuccess {
		if resp.Translation == nil {
			return "", &ParseError{Err: errNoTranslation}
		}
		return *resp.Translation, nil
	}
	if msg, ok := LookupCode(code); ok {
		return "", &RemoteServiceError{Code: code, Message: msg}
	}
	return "", &UnknownRemoteError{Code: code}
}
