package words

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lines は r を一行ずつ読み込み、UTF-8として検証済みの行を遅延的に返します。
// シーケンスは一度しか消費できず、再開もできません。
// 不正なUTF-8を含む行では *DecodingError を、読み込みエラーではそのエラーを返して終了します。
func Lines(r io.Reader) iter.Seq2[string, error] {
	br := bufio.NewReader(r)
	return func(yield func(string, error) bool) {
		for lineNo := 1; ; lineNo++ {
			line, err := br.ReadBytes('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				yield("", err)
				return
			}
			eof := err != nil

			// 最終行が空の場合は行として扱わない
			if eof && len(line) == 0 {
				return
			}

			line = bytes.TrimSuffix(line, []byte{'\n'})
			line = bytes.TrimSuffix(line, []byte{'\r'})

			if offset := invalidUTF8Offset(line); offset >= 0 {
				yield("", &DecodingError{Line: lineNo, Offset: offset})
				return
			}

			if !yield(string(line), nil) || eof {
				return
			}
		}
	}
}

// Tokenize は行を空白文字の連続で分割し、空でないトークンを出現順に返します。
// unicode.IsSpace に加えて、情報分離文字 (U+001C〜U+001F) も区切りとして扱います。
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, isSeparator)
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}

// invalidUTF8Offset は最初の不正なバイトの位置を返します。すべて有効なら -1 を返します。
func invalidUTF8Offset(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
