package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %d", ErrForbidden, resp.StatusCode())
	case http.StatusNotFound, http.StatusGone:
		return fmt.Errorf("%w: %d", ErrNotFound, resp.StatusCode())
	case http.StatusBadGateway, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %d", ErrBadGateway, resp.StatusCode())
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), http.StatusText(resp.StatusCode()))
	}
}
