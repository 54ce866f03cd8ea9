package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// CLI level messages (info)
		"Saved %s":                      "%s を保存しました",
		"Preview saved to %s (%dx%d)":   "プレビューを %s に保存しました (%dx%d)",
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",

		// Design files (designfile component)
		"Read %d bytes from %s": "%[2]s から %[1]d バイト読み込みました",
		"Wrote %d bytes to %s":  "%[2]s に %[1]d バイト書き込みました",

		// Font discovery (fonts component)
		"Skipping font directory %s: %v":                "フォントディレクトリ %s をスキップします: %v",
		"Found %d fonts in %d directories (%d skipped)": "%[2]d ディレクトリで %[1]d 個のフォントが見つかりました (%[3]d 個スキップ)",

		// Command registry
		"Invoking %s (%s)":                    "%s を実行中 (%s)",
		"Command %s (%s) completed in %s":     "コマンド %s (%s) が %s で完了しました",
		"Command %s (%s) failed after %s: %v": "コマンド %s (%s) が %s 後に失敗しました: %v",

		// Gateway
		"Gateway listening on %s":     "ゲートウェイが %s で待ち受け中",
		"Client %d connected":         "クライアント %d が接続しました",
		"Client %d disconnected":      "クライアント %d が切断しました",
		"Rejected connection from %s": "%s からの接続を拒否しました",
		"WebSocket accept failed: %v": "WebSocket の受け入れに失敗しました: %v",

		// Stdio bridge
		"Bridge ready on stdio":          "標準入出力でブリッジの準備ができました",
		"Bridge input closed":            "ブリッジの入力が閉じられました",
		"Discarding malformed frame: %v": "不正なフレームを破棄しました: %v",
	})
}
