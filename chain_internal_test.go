// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package tes3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidatePaths(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{
			path: "tx_sky.tga",
			want: []string{"tx_sky.tga", "textures/tx_sky.tga", "tx_sky.dds", "textures/tx_sky.dds"},
		},
		{
			path: "icons/x.bmp",
			want: []string{
				"icons/x.bmp", "textures/icons/x.bmp",
				"icons/x.dds", "icons/x.tga",
				"textures/icons/x.dds", "textures/icons/x.tga",
			},
		},
		{
			path: "Textures\\Sky.DDS",
			want: []string{"Textures/Sky.DDS", "Textures/Sky.tga"},
		},
		{
			path: "noext",
			want: []string{"noext", "textures/noext", "noext.dds", "noext.tga", "textures/noext.dds", "textures/noext.tga"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, candidatePaths(tc.path))
		})
	}
}
