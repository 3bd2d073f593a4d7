package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shouni/go-word-fetch/internal/pipeline"
	"github.com/shouni/go-word-fetch/pkg/printer"
	"github.com/shouni/go-word-fetch/pkg/words"
)

// コマンドラインフラグ変数を定義
var (
	rawURL     string // --url 取得対象のURL
	formatName string // --format ボディの解釈方法
	countOnly  bool   // --count 単語数のみを表示
)

// resolveURL は位置引数、--url フラグの順で取得対象URLを決定し、スキームを補完します。
func resolveURL(args []string, flagURL string) (string, error) {
	target := flagURL
	if len(args) > 0 {
		target = args[0]
	}
	if target == "" {
		target = words.DefaultURL
	}
	return ensureScheme(target)
}

// runWords は取得した単語を一行ずつ、または単語数のみを out に書き出します。
func runWords(ctx context.Context, out io.Writer, opts pipeline.Options, count bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := pipeline.FetchURLWords(ctx, opts)
	if err != nil {
		return fmt.Errorf("単語の取得に失敗しました (URL: %s): %w", opts.URL, err)
	}

	if count {
		_, err := fmt.Fprintln(out, len(result))
		return err
	}
	return printer.PrintItems(out, result)
}

var wordsCmd = &cobra.Command{
	Use:   "words [URL]",
	Short: "指定されたURLのテキストを取得し、単語を一行ずつ表示します",
	Long:  `指定されたURLのドキュメントを一度だけ取得し、UTF-8テキストとして解釈して空白区切りの単語を出現順に表示します。URLを省略した場合はデモ用ドキュメントを取得します。`,
	Args:  cobra.MaximumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := words.ParseFormat(formatName)
		if err != nil {
			return err
		}

		target, err := resolveURL(args, rawURL)
		if err != nil {
			return fmt.Errorf("URLスキームの処理エラー: %w", err)
		}
		logger.WithFields(logrus.Fields{
			"url":     target,
			"format":  format,
			"timeout": overallTimeout(),
		}).Debug("処理対象URL")

		opts := pipeline.Options{
			URL:            target,
			Format:         format,
			ClientTimeout:  clientTimeout(),
			OverallTimeout: overallTimeout(),
			UserAgent:      envCfg.UserAgent,
			Logger:         logger,
		}
		return runWords(cmd.Context(), cmd.OutOrStdout(), opts, countOnly)
	},
}

func init() {
	wordsCmd.Flags().StringVarP(&rawURL, "url", "u", envCfg.URL, "取得対象のURL")
	wordsCmd.Flags().StringVarP(&formatName, "format", "f", string(envCfg.Format), "ボディの形式 (text, html, feed)")
	wordsCmd.Flags().BoolVar(&countOnly, "count", false, "単語を表示せず、単語数のみを表示します")
}
