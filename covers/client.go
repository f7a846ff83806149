package covers

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

func newClient() *resty.Client {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetRetryCount(3).
		SetRetryWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil ||
				r.StatusCode() == http.StatusTooManyRequests ||
				r.StatusCode() >= http.StatusInternalServerError
		})
	return client
}
