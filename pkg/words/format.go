package words

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"golang.org/x/net/html"
)

// Format は取得したボディをどのように解釈するかを表します。
type Format string

const (
	// FormatText はボディをそのままプレーンテキストとして扱います。
	FormatText Format = "text"
	// FormatHTML はHTMLとして解析し、表示テキストから単語を抽出します。
	FormatHTML Format = "html"
	// FormatFeed はRSS/Atom/JSONフィードとして解析し、タイトルと説明から単語を抽出します。
	FormatFeed Format = "feed"
)

// noiseSelectors は本文として扱わない要素です。
const noiseSelectors = "script, style, noscript, template"

// inlineElements は前後で単語を区切らない要素です。
var inlineElements = map[string]bool{
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true, "cite": true,
	"code": true, "data": true, "dfn": true, "em": true, "i": true, "kbd": true,
	"mark": true, "q": true, "s": true, "samp": true, "small": true, "span": true,
	"strong": true, "sub": true, "sup": true, "time": true, "u": true, "var": true,
}

// ParseFormat は文字列を Format に変換します。空文字列は FormatText として扱います。
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatHTML:
		return FormatHTML, nil
	case FormatFeed:
		return FormatFeed, nil
	}
	return "", fmt.Errorf("未対応のフォーマットです: %q (text, html, feed のいずれかを指定してください)", s)
}

func (f Format) valid() bool {
	return f == FormatText || f == FormatHTML || f == FormatFeed
}

// htmlText はHTMLドキュメントから表示テキストを文書順に抽出します。
// ブロック要素の境界には改行を挟み、隣接するブロックの単語が連結されないようにします。
func htmlText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("HTML解析に失敗しました: %w", err)
	}
	doc.Find(noiseSelectors).Remove()

	var sb strings.Builder
	for _, n := range doc.Nodes {
		writeText(&sb, n)
	}
	return sb.String(), nil
}

func writeText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.CommentNode:
		return
	}

	block := n.Type == html.ElementNode && !inlineElements[n.Data]
	if block {
		sb.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(sb, c)
	}
	if block {
		sb.WriteByte('\n')
	}
}

// feedText はフィードのタイトル、各アイテムのタイトルと説明を一行ずつ並べたテキストを返します。
func feedText(data []byte) (string, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("フィードの解析に失敗しました: %w", err)
	}

	parts := []string{feed.Title}
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		parts = append(parts, item.Title)
		if item.Description == "" {
			continue
		}
		desc, err := htmlText([]byte(item.Description))
		if err != nil {
			return "", err
		}
		parts = append(parts, desc)
	}
	return strings.Join(parts, "\n"), nil
}
