package words

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultURL は、ロケーターが指定されなかった場合に取得するデモ用ドキュメントです。
const DefaultURL = "http://sixty-north.com/c/t.txt"

// ----------------------------------------------------------------------
// 依存性の定義 (DIP)
// ----------------------------------------------------------------------

// Fetcher は、リソースのバイトストリームを一度だけ取得する機能のインターフェースを定義します。
// WordFetcher は、この抽象に依存します。
type Fetcher interface {
	Open(ctx context.Context, url string) (io.ReadCloser, error)
}

// httpStatusCoder は、ステータスコードを保持するエラーが満たすインターフェースです。
type httpStatusCoder interface {
	HTTPStatusCode() int
}

// WordFetcher は、Fetcher を使ってドキュメントを取得し、単語列に分割します。
// 可変状態を持たないため、複数のゴルーチンから同時に利用できます。
type WordFetcher struct {
	fetcher Fetcher
	format  Format
	logger  *logrus.Entry
}

// Option は WordFetcher の設定を行うための関数型です。
type Option func(*WordFetcher)

// WithFormat はボディの解釈方法を設定します。
func WithFormat(format Format) Option {
	return func(w *WordFetcher) {
		w.format = format
	}
}

// WithLogger はデバッグログの出力先を設定します。
func WithLogger(logger *logrus.Entry) Option {
	return func(w *WordFetcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWordFetcher は、新しいWordFetcherのインスタンスを生成します。
func NewWordFetcher(fetcher Fetcher, opts ...Option) (*WordFetcher, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("words.NewWordFetcher: Fetcher cannot be nil")
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	w := &WordFetcher{
		fetcher: fetcher,
		format:  FormatText,
		logger:  logrus.NewEntry(discard),
	}
	for _, opt := range opts {
		opt(w)
	}

	if !w.format.valid() {
		return nil, fmt.Errorf("words.NewWordFetcher: 未対応のフォーマットです: %q", w.format)
	}
	return w, nil
}

// FetchWords は指定されたURLのドキュメントを取得し、空白で区切られた単語を出現順に返します。
// url が空の場合は DefaultURL を使用します。
// 失敗時は *RetrievalError または *DecodingError を返し、部分的な結果は返しません。
func (w *WordFetcher) FetchWords(ctx context.Context, url string) ([]string, error) {
	if url == "" {
		url = DefaultURL
	}
	log := w.logger.WithFields(logrus.Fields{"url": url, "format": w.format})
	log.Debug("ドキュメントを取得します")

	// 1. Fetcherからバイトストリームを取得 (通信の責務)
	body, err := w.fetcher.Open(ctx, url)
	if err != nil {
		return nil, newRetrievalError(url, err)
	}
	defer body.Close()

	// 2. 形式に応じてテキストを行単位で読み、単語に分割 (解析の責務)
	var words []string
	switch w.format {
	case FormatHTML, FormatFeed:
		words, err = w.collectFormatted(body)
	default:
		words, err = collect(body)
	}
	if err != nil {
		return nil, classify(url, err)
	}

	log.WithField("words", len(words)).Debug("単語の抽出が完了しました")
	return words, nil
}

// collectFormatted はボディ全体を読み込み、UTF-8を検証してから形式別にテキストを取り出します。
func (w *WordFetcher) collectFormatted(body io.Reader) ([]string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	// 形式の解析より先にUTF-8の検証を行う
	for _, err := range Lines(bytes.NewReader(data)) {
		if err != nil {
			return nil, err
		}
	}

	var text string
	if w.format == FormatHTML {
		text, err = htmlText(data)
	} else {
		text, err = feedText(data)
	}
	if err != nil {
		return nil, &DecodingError{Err: err}
	}
	return collect(strings.NewReader(text))
}

// collect は行を順に読み込み、各行の単語を出現順に連結します。
func collect(r io.Reader) ([]string, error) {
	words := []string{}
	for line, err := range Lines(r) {
		if err != nil {
			return nil, err
		}
		words = append(words, Tokenize(line)...)
	}
	return words, nil
}

// classify は読み込み中のエラーを RetrievalError か DecodingError に振り分けます。
func classify(url string, err error) error {
	var decErr *DecodingError
	if errors.As(err, &decErr) {
		return &DecodingError{URL: url, Line: decErr.Line, Offset: decErr.Offset, Err: decErr.Err}
	}
	return newRetrievalError(url, fmt.Errorf("レスポンスボディの読み込みに失敗しました: %w", err))
}

func newRetrievalError(url string, err error) *RetrievalError {
	retrievalErr := &RetrievalError{URL: url, Err: err}
	var coder httpStatusCoder
	if errors.As(err, &coder) {
		retrievalErr.StatusCode = coder.HTTPStatusCode()
	}
	return retrievalErr
}
