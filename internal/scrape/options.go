package scrape

import (
	"time"

	"github.com/discstats/nationals/internal/domain/normalize"
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithBaseURL sets the archive site base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRetries sets how many times a failed fetch is retried.
func WithRetries(retries int) Option {
	return func(c *Client) {
		if retries >= 0 {
			c.retries = retries
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithNormalizer sets the normalizer used to map page headings to
// division labels.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(c *Client) {
		if n != nil {
			c.norm = n
		}
	}
}
