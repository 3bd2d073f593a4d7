package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shouni/go-word-fetch/pkg/client"
	"github.com/shouni/go-word-fetch/pkg/words"
)

// DefaultOverallTimeout は、Options.OverallTimeout が未指定の場合の全体タイムアウトです。
const DefaultOverallTimeout = 20 * time.Second

// Options は FetchURLWords の実行設定です。
type Options struct {
	URL            string        // 空の場合は words.DefaultURL
	Format         words.Format  // 空の場合は words.FormatText
	ClientTimeout  time.Duration // HTTPクライアントのタイムアウト
	OverallTimeout time.Duration // 取得から分割までの全体タイムアウト
	UserAgent      string
	Logger         *logrus.Entry
}

// FetchURLWords は、URLからドキュメントを取得し、単語列を返すメインの処理パイプラインです。
func FetchURLWords(ctx context.Context, opts Options) ([]string, error) {
	overallTimeout := opts.OverallTimeout
	if overallTimeout <= 0 {
		overallTimeout = DefaultOverallTimeout
	}
	format := opts.Format
	if format == "" {
		format = words.FormatText
	}

	// 1. Fetcher 実装を初期化 (依存性の初期化)
	fetcher := client.New(opts.ClientTimeout, client.WithUserAgent(opts.UserAgent))

	// 2. WordFetcher を初期化 (DI)
	wf, err := words.NewWordFetcher(fetcher, words.WithFormat(format), words.WithLogger(opts.Logger))
	if err != nil {
		return nil, fmt.Errorf("WordFetcherの初期化エラー: %w", err)
	}

	// 3. 全体処理のコンテキストを設定
	ctx, cancel := context.WithTimeout(ctx, overallTimeout)
	defer cancel()

	// 4. 取得と分割の実行
	return wf.FetchWords(ctx, opts.URL)
}
