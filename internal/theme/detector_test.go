package theme

import (
	"testing"
)

func TestIsDark(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want bool
	}{
		{
			name: "dark hex background on body",
			doc:  "body{background:#0a0a0a}",
			want: true,
		},
		{
			name: "light hex background on body",
			doc:  "body{background:#ffffff}",
			want: false,
		},
		{
			name: "data-theme dark wins regardless of css",
			doc:  `<html data-theme="dark">`,
			want: true,
		},
		{
			name: "background-color variant",
			doc:  "<style>html { background-color: #111; }</style>",
			want: true,
		},
		{
			name: "known dark literal",
			doc:  "body{background:black}",
			want: true,
		},
		{
			name: "short dark hex in range",
			doc:  "body{background:#222}",
			want: true,
		},
		{
			name: "hex just above dark range",
			doc:  "body{background:#444}",
			want: false,
		},
		{
			name: "dark class attribute",
			doc:  `<html class="dark"><body></body></html>`,
			want: true,
		},
		{
			name: "class containing dark substring",
			doc:  `<body class="theme-dark-mode">`,
			want: true,
		},
		{
			name: "dark background utility class",
			doc:  `<div class="min-h-screen bg-zinc-900 text-white">`,
			want: true,
		},
		{
			name: "gray-800 utility class",
			doc:  `<section class="bg-gray-800">`,
			want: true,
		},
		{
			name: "light utility class",
			doc:  `<div class="bg-gray-100">`,
			want: false,
		},
		{
			name: "unknown palette utility ignored",
			doc:  `<div class="bg-brand-900">`,
			want: false,
		},
		{
			name: "light css does not block class signal",
			doc:  `<style>body{background:#fafafa}</style><div class="bg-zinc-900">`,
			want: true,
		},
		{
			name: "tbody selector is not body",
			doc:  "tbody{background:#000}",
			want: false,
		},
		{
			name: "html tag does not bind to first stylesheet rule",
			doc:  `<html><head><style>.promo-card{background:#0a0a0a}</style></head><body><p>light</p></body></html>`,
			want: false,
		},
		{
			name: "dark hero rule before light body rule",
			doc:  `<style>.hero{background:#000}body{background:#fff}</style>`,
			want: false,
		},
		{
			name: "empty document",
			doc:  "",
			want: false,
		},
		{
			name: "no signals at all",
			doc:  `<html><body><p>hello</p></body></html>`,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDark(tt.doc); got != tt.want {
				t.Errorf("IsDark(%q) = %v, want %v", tt.doc, got, tt.want)
			}
		})
	}
}
