// Package config holds the settings model for gridview: defaults, named
// grid presets and loading overrides from an HCL file.
//
// A settings file may set any subset of:
//
//	preset = "pink"
//
//	grid {
//	  color           = colors.deeppink
//	  line_width      = 0.25
//	  step            = 50
//	  bold_interval   = 2
//	  bold_color      = "darkviolet"
//	  bold_line_width = 1
//	}
//
//	pointer { color = "black" }
//	window {
//	  width      = 800
//	  height     = 600
//	  margin     = 20
//	  title      = "gridview"
//	  background = "white"
//	}
//	terminal {
//	  cell_width  = 8
//	  cell_height = 16
//	  fps         = 30
//	}
//
// The colors object exposes every CSS color name as a hex string.
package config
