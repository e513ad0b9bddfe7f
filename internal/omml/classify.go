// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package omml

// classifyTag maps an OMML local tag name to a structural node kind. The
// mapping is total: unknown tags classify as KindGroup, which concatenates
// whatever their children produce. Container tags that only wrap other
// math (oMath, oMathPara, box, the phantom variants) classify as groups
// for the same reason.
func classifyTag(local string) NodeKind {
	switch local {
	case "f":
		return KindFraction
	case "rad":
		return KindRadical
	case "sSup":
		return KindSuperscript
	case "sSub":
		return KindSubscript
	case "sSubSup":
		return KindSubSup
	case "nary":
		return KindNary
	case "d":
		return KindDelimiter
	case "m":
		return KindMatrix
	case "func":
		return KindFunction
	case "acc":
		return KindAccent
	case "bar":
		return KindBar
	case "borderBox":
		return KindBorderBox
	case "groupChr":
		return KindGroupChr
	case "limLow":
		return KindLimLow
	case "limUpp":
		return KindLimUpp
	case "r":
		return KindRun
	}
	return KindGroup
}
