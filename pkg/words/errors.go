package words

import (
	"fmt"
)

// RetrievalError は、ロケーターからドキュメントのバイト列を取得できなかったことを示します。
// ネットワークエラー、不正なURL、2xx以外のステータス、タイムアウト、ボディ読み込み中の失敗が該当します。
type RetrievalError struct {
	URL        string
	StatusCode int // 不明な場合は 0
	Err        error
}

func (e *RetrievalError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("ドキュメントの取得に失敗しました (URL: %s, ステータス: %d): %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("ドキュメントの取得に失敗しました (URL: %s): %v", e.URL, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// DecodingError は、取得したバイト列をテキストとして解釈できないことを示します。
// 通常は不正なUTF-8ですが、HTML/フィード形式の解析失敗も Err に保持されます。
type DecodingError struct {
	URL    string
	Line   int // 1始まりの行番号
	Offset int // 行内で最初に不正なバイトの位置
	Err    error
}

func (e *DecodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ドキュメントを解釈できません (URL: %s): %v", e.URL, e.Err)
	}
	if e.URL == "" {
		return fmt.Sprintf("UTF-8として解釈できないバイト列があります (行: %d, オフセット: %d)", e.Line, e.Offset)
	}
	return fmt.Sprintf("UTF-8として解釈できないバイト列があります (URL: %s, 行: %d, オフセット: %d)", e.URL, e.Line, e.Offset)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}
