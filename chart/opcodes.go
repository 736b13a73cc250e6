package chart

// Chart substream record types.
const (
	// ── Structure ─────────────────────────────────────────────────────────
	OpBegin       = 0x1033
	OpEnd         = 0x1034
	OpStartBlock  = 0x0852
	OpEndBlock    = 0x0853
	OpStartObject = 0x0854
	OpEndObject   = 0x0855
	OpBOF         = 0x0809
	OpEOF         = 0x000A

	// ── Chart and layout ──────────────────────────────────────────────────
	OpUnits        = 0x1001
	OpChart        = 0x1002
	OpChartFormat  = 0x1014
	OpLegend       = 0x1015
	OpFrame        = 0x1032
	OpPlotArea     = 0x1035
	OpChart3d      = 0x103A
	OpAxisParent   = 0x1041
	OpLegendExcept = 0x1043
	OpShtProps     = 0x1044
	OpAxesUsed     = 0x1046
	OpPos          = 0x104F
	OpPlotGrowth   = 0x1064
	OpCrtLayout12  = 0x089D
	OpCrtLayout12A = 0x08A7
	OpScl          = 0x00A0
	OpDat          = 0x1063
	OpCrtLink      = 0x1022
	OpFbi          = 0x1060
	OpFbi2         = 0x1068

	// ── Chart groups ──────────────────────────────────────────────────────
	OpBar        = 0x1017
	OpLine       = 0x1018
	OpPie        = 0x1019
	OpArea       = 0x101A
	OpScatter    = 0x101B
	OpRadar      = 0x103E
	OpSurf       = 0x103F
	OpRadarArea  = 0x1040
	OpBopPop     = 0x1061
	OpChartLine  = 0x101C
	OpDropBar    = 0x103D
	OpSeriesList = 0x1016

	// ── Series and data points ────────────────────────────────────────────
	OpSeries          = 0x1003
	OpDataFormat      = 0x1006
	OpLineFormat      = 0x1007
	OpMarkerFormat    = 0x1009
	OpAreaFormat      = 0x100A
	OpPieFormat       = 0x100B
	OpAttachedLabel   = 0x100C
	OpSeriesText      = 0x100D
	OpSerToCrt        = 0x1045
	OpSerParent       = 0x104A
	OpSerAuxTrend     = 0x104B
	OpSerAuxErrBar    = 0x105B
	OpSerFmt          = 0x105D
	OpChart3DBarShape = 0x105F
	OpSIIndex         = 0x1065
	OpBRAI            = 0x1051
	OpGelFrame        = 0x1066

	// ── Axes ──────────────────────────────────────────────────────────────
	OpAxis        = 0x101D
	OpTick        = 0x101E
	OpValueRange  = 0x101F
	OpCatSerRange = 0x1020
	OpAxisLine    = 0x1021
	OpIFmtRecord  = 0x104E
	OpAxcExt      = 0x1062
	OpCatLab      = 0x0856

	// ── Text ──────────────────────────────────────────────────────────────
	OpDefaultText = 0x1024
	OpText        = 0x1025
	OpFontX       = 0x1026
	OpObjectLink  = 0x1027
	OpAlRuns      = 0x1050
	OpFont        = 0x0031
)
