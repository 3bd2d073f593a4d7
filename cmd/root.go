package cmd

import (
	"os"
	"time"

	clibase "github.com/shouni/go-cli-base"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shouni/go-word-fetch/internal/config"
)

// --- グローバル定数 ---

const (
	appName = "word-fetch"

	// 全体処理のタイムアウト係数 (クライアントタイムアウトの2倍)
	overallTimeoutFactor = 2
)

// --- グローバル変数とフラグ構造体 ---

// AppFlags はこのアプリケーション固有の永続フラグを保持
type AppFlags struct {
	TimeoutSec int // --timeout タイムアウト
}

// Flags はアプリケーション固有フラグにアクセスするためのグローバル変数
var Flags AppFlags

// envCfg は環境変数から読み込んだフラグのデフォルト値
var envCfg = config.Load()

var logger = newLogger(logrus.InfoLevel)

// --- 初期化とロジック (clibaseへのコールバックとして利用) ---

func newLogger(level logrus.Level) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(level)
	return l.WithField("app", appName)
}

// addAppPersistentFlags は、アプリケーション固有の永続フラグをルートコマンドに追加します。
func addAppPersistentFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().IntVar(
		&Flags.TimeoutSec,
		"timeout",
		int(envCfg.Timeout/time.Second),
		"HTTPリクエストのタイムアウト時間（秒）",
	)
}

// initAppPreRunE は、clibase共通処理の後に実行される、アプリケーション固有のPersistentPreRunEです。
// NOTE: clibaseの PersistentPreRunE チェーンにより、clibase.Flags.Verbose はこの関数実行前に設定済み
func initAppPreRunE(cmd *cobra.Command, args []string) error {
	if clibase.Flags.Verbose {
		logger.Logger.SetLevel(logrus.DebugLevel)
		logger.Debugf("HTTPクライアントのタイムアウトを設定しました (Timeout: %s)。", clientTimeout())
	}
	return nil
}

// clientTimeout は --timeout フラグを time.Duration に変換します。
func clientTimeout() time.Duration {
	return time.Duration(Flags.TimeoutSec) * time.Second
}

// overallTimeout は取得処理全体のタイムアウトです。0 の場合はパイプラインのデフォルトが使われます。
func overallTimeout() time.Duration {
	return clientTimeout() * overallTimeoutFactor
}

// --- エントリポイント ---

// Execute は、ルートコマンドを実行するメイン関数です。clibaseのExecuteを使用する。
func Execute() {
	clibase.Execute(
		appName,
		addAppPersistentFlags,
		initAppPreRunE,
		wordsCmd,
	)
}
