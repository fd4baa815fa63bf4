// Package analysis は夢・睡眠の月次統計を計算します。
// DBアクセスは行わず、リポジトリが読み込んだスライスだけを入力にとります。
package analysis
