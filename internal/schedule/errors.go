package schedule

import "fmt"

// RequestError reports a failed call to the schedules endpoint: either a
// non-2xx response (StatusCode set) or a transport failure (StatusCode 0).
type RequestError struct {
	StatusCode int
	Status     string
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("request failed: %v", e.Err)
	}
	msg := fmt.Sprintf("request failed: %s", e.Status)
	if e.Status == "" {
		msg = fmt.Sprintf("request failed: status %d", e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("%s: %s", msg, e.Body)
	}
	return msg
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that could not be decoded
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DateParseError reports a start_datetime that is not a valid timestamp
type DateParseError struct {
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid start_datetime %q", e.Value)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}
