package printer

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// PrintItems は各要素を一行ずつ w に書き出します。
func PrintItems(w io.Writer, items []string) error {
	bw := bufio.NewWriter(w)
	for _, item := range items {
		if _, err := fmt.Fprintln(bw, item); err != nil {
			return fmt.Errorf("出力の書き込みに失敗しました: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("出力の書き込みに失敗しました: %w", err)
	}
	return nil
}

// Print は各要素を標準出力に一行ずつ書き出します。
func Print(items []string) error {
	return PrintItems(os.Stdout, items)
}
