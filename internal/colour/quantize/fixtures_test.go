package quantize

import "github.com/jmylchreest/tonal/internal/colour"

// samplePixels is a small photographic crop used for stability checks.
var samplePixels = []colour.ARGB{
	0xFF050505, 0xFF000000, 0xFF000000, 0xFF000000, 0xFF000000, 0xFF090909,
	0xFF060404, 0xFF030102, 0xFF080607, 0xFF070506, 0xFF010001, 0xFF070506,
	0xFF364341, 0xFF223529, 0xFF14251C, 0xFF11221A, 0xFF1F3020, 0xFF34443A,
	0xFF64817E, 0xFF638777, 0xFF486D58, 0xFF2F5536, 0xFF467258, 0xFF7FB7B9,
	0xFF6D8473, 0xFF859488, 0xFF7A947E, 0xFF5F815D, 0xFF3A5D46, 0xFF497469,
	0xFF737A73, 0xFF656453, 0xFF445938, 0xFF657C4B, 0xFF65715B, 0xFF6A816E,
	0xFF667366, 0xFF5B5547, 0xFF3B391E, 0xFF705E3D, 0xFF7F6C5E, 0xFF6D7C6C,
	0xFFA99C9C, 0xFF8B7671, 0xFF6A3229, 0xFF80514B, 0xFF857970, 0xFF4F5A4C,
	0xFF897273, 0xFF745451, 0xFF512823, 0xFF78585A, 0xFF535552, 0xFF40493F,
	0xFF151616, 0xFF0A0C0C, 0xFF050808, 0xFF010303, 0xFF000100, 0xFF010200,
	0xFF191816, 0xFF181818, 0xFF0C0C0C, 0xFF040404, 0xFF0C0C0C, 0xFF151514,
	0xFFB1C3B9, 0xFFBFBFBF, 0xFFBABABA, 0xFFB7B7B7, 0xFFB3B3B3, 0xFFADADAD,
	0xFF535756, 0xFF575656, 0xFF555555, 0xFF555555, 0xFF545454, 0xFF474646,
	0xFF000000, 0xFF000000, 0xFF0B0B0B, 0xFF0B0B0B, 0xFF000000, 0xFF000000,
}
