package main

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// newClient builds a resty client against the configured service base URL.
func newClient() *resty.Client {
	c := resty.New().
		SetBaseURL(apiFlag).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)
	if keyFlag != "" {
		c.SetAuthToken(keyFlag)
	}
	return c
}

// do executes the prepared request and returns the raw response body, turning
// non-2xx statuses into errors carrying the server's error envelope.
func do(req *resty.Request, method, path string) ([]byte, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	return resp.Body(), nil
}
