package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// errEmptyURL は空白のみのURLが渡された場合のエラーです。
var errEmptyURL = errors.New("URLが空です")

// ensureScheme は、前後の空白を取り除いたうえで、スキームがない場合に https:// を補完します。
// 既にスキームが存在する場合は、それが http または https であるかをチェックします。
func ensureScheme(rawURL string) (string, error) {
	// 位置引数や環境変数から貼り付けられた前後の空白・改行を除去
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", errEmptyURL
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("URLのパースエラー: %w", err)
	}

	if parsedURL.Scheme != "" {
		if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
			return "", fmt.Errorf("無効なURLスキームです。httpまたはhttpsを指定してください: %s", rawURL)
		}
		return rawURL, nil
	}

	return "https://" + rawURL, nil
}
