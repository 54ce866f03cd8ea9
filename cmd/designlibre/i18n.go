// Package main provides localization for the designlibre CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Native backend for the designlibre editor":   "designlibre エディタのネイティブバックエンド",
		"YAML configuration file":                     "YAML 設定ファイル",
		"Log level (debug, info, warn, error)":        "ログレベル (debug, info, warn, error)",
		"Suppress all log output":                     "すべてのログ出力を抑制",
		"Confine design file paths to this directory": "デザインファイルのパスをこのディレクトリ内に制限",

		// Design files
		"Print the content of a design file":                   "デザインファイルの内容を表示",
		"Print the path and content as JSON":                   "パスと内容を JSON で表示",
		"Write a design file from --content or standard input": "--content または標準入力からデザインファイルを書き込む",
		"Content to write instead of reading standard input":   "標準入力の代わりに書き込む内容",
		"read requires exactly one PATH":                       "read には PATH を1つだけ指定してください",
		"write requires exactly one PATH":                      "write には PATH を1つだけ指定してください",

		// Fonts
		"List installed font files":                                  "インストール済みのフォントファイルを一覧表示",
		"Print the list as a JSON array":                             "一覧を JSON 配列で表示",
		"Show the faces contained in a font file":                    "フォントファイルに含まれるフェイスを表示",
		"font-info requires exactly one NAME":                        "font-info には NAME を1つだけ指定してください",
		"Render a text sample with an installed font to PNG or JPEG": "インストール済みフォントでサンプル文字列を PNG または JPEG に描画",
		"Output file path (.png, .jpg or .jpeg)":                     "出力ファイルパス (.png, .jpg, .jpeg)",
		"Sample text":                                                "サンプル文字列",
		"Font size in points":                                        "フォントサイズ (ポイント)",
		"Scale the image down to at most this width":                 "画像をこの幅以下に縮小",
		"preview requires exactly one NAME":                          "preview には NAME を1つだけ指定してください",

		// Bridges
		"Serve commands to the editor over WebSocket":                           "WebSocket でエディタにコマンドを提供",
		"Listen address (loopback only)":                                        "待ち受けアドレス (ループバックのみ)",
		"Token clients must pass as ?token=":                                    "クライアントが ?token= で渡すトークン",
		"Serve commands as newline-delimited JSON on standard input and output": "標準入出力上の改行区切り JSON でコマンドを提供",

		// Version command
		"Show version information": "バージョン情報を表示",
		"designlibre version %s":   "designlibre バージョン %s",
	})
}
