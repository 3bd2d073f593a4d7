package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shouni/go-http-kit/pkg/httpkit"
)

// ----------------------------------------------------------------------
// 定数とインターフェース
// ----------------------------------------------------------------------

const (
	// DefaultHTTPTimeout は、デフォルトのHTTPタイムアウトです。
	DefaultHTTPTimeout = 10 * time.Second
	// DefaultMaxBodySize は、レスポンスボディの最大サイズです (10MB)。
	DefaultMaxBodySize = int64(10 * 1024 * 1024)
	// DefaultUserAgent は、リクエストに付与するUser-Agentです。
	DefaultUserAgent = "go-word-fetch/1.0"
)

// ErrBodyTooLarge は、レスポンスボディが最大サイズを超えた場合に返されます。
var ErrBodyTooLarge = errors.New("レスポンスボディが最大サイズを超えました")

// Doer は、標準の *http.Client.Do()と互換性のあるHTTPクライアントのインターフェースを定義します。
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPStatusError は、ステータスコードが判明している取得失敗を表します。
// 元のエラー (httpkit.NonRetryableHTTPError) は Unwrap で取得できます。
type HTTPStatusError struct {
	StatusCode int
	Err        error
}

func (e *HTTPStatusError) Error() string {
	return e.Err.Error()
}

func (e *HTTPStatusError) Unwrap() error {
	return e.Err
}

// HTTPStatusCode はステータスコードを返します。
func (e *HTTPStatusError) HTTPStatusCode() int {
	return e.StatusCode
}

// StatusCode は、エラーチェーンに httpkit の非リトライ対象エラーが含まれていればそのステータスコードを返します。
func StatusCode(err error) (int, bool) {
	var nonRetryable *httpkit.NonRetryableHTTPError
	if errors.As(err, &nonRetryable) {
		return nonRetryable.StatusCode, true
	}
	return 0, false
}

// Client は httpkit.Client をラップし、リトライなしの一度きりの取得を行います。
type Client struct {
	*httpkit.Client // httpkit.Client を埋め込み、そのすべてのメソッドを継承

	doer        Doer
	userAgent   string
	maxBodySize int64
}

// userAgentDoer は httpkit が付与したUser-Agentを上書きしてから委譲します。
type userAgentDoer struct {
	next      Doer
	userAgent string
}

func (d *userAgentDoer) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", d.userAgent)
	return d.next.Do(req)
}

// ----------------------------------------------------------------------
// 設定とコンストラクタ
// ----------------------------------------------------------------------

// ClientOption はClientの設定を行うための関数型です。
type ClientOption func(*Client)

// WithHTTPClient はカスタムのDoerを設定します。
func WithHTTPClient(doer Doer) ClientOption {
	return func(c *Client) {
		if doer != nil {
			c.doer = doer
		}
	}
}

// WithUserAgent はUser-Agentヘッダーを設定します。
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithMaxBodySize はレスポンスボディの最大サイズを設定します。
// httpkit 自体の上限 (10MB) より大きい値を指定しても、そちらが優先されます。
func WithMaxBodySize(limit int64) ClientOption {
	return func(c *Client) {
		if limit > 0 {
			c.maxBodySize = limit
		}
	}
}

// New は新しいClientを初期化します。
// timeout が 0 以下の場合は DefaultHTTPTimeout を使用します。
func New(timeout time.Duration, options ...ClientOption) *Client {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}

	c := &Client{
		doer:        &http.Client{Timeout: timeout},
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range options {
		opt(c)
	}

	// リトライ回数 0 で、httpkit は一度だけリクエストを実行する
	c.Client = httpkit.New(
		timeout,
		httpkit.WithMaxRetries(0),
		httpkit.WithHTTPClient(&userAgentDoer{next: c.doer, userAgent: c.userAgent}),
	)
	return c
}

// ----------------------------------------------------------------------
// httpkit メソッドの利用
// ----------------------------------------------------------------------

// FetchBytes は URL からコンテンツを一度だけ取得し、生のバイト配列として返します。
func (c *Client) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	data, err := c.Client.FetchBytes(ctx, url)
	if err != nil {
		if code, ok := StatusCode(err); ok {
			return nil, &HTTPStatusError{StatusCode: code, Err: err}
		}
		return nil, err
	}

	if int64(len(data)) > c.maxBodySize {
		return nil, fmt.Errorf("%w (%dバイト > %dバイト)", ErrBodyTooLarge, len(data), c.maxBodySize)
	}
	return data, nil
}

// Open は FetchBytes の結果を io.ReadCloser として返し、words.Fetcher を満たします。
func (c *Client) Open(ctx context.Context, url string) (io.ReadCloser, error) {
	data, err := c.FetchBytes(ctx, url)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
