package emoji

import "sort"

// Code point tables derived from the Unicode 15.1 emoji-data file
// (https://unicode.org/Public/emoji/15.1/). Two properties matter here:
//
//   - presentationRanges: Emoji_Presentation=Yes. These render as emoji by
//     default and are always stripped.
//   - textDefaultRanges: Emoji=Yes but Emoji_Presentation=No (™, ©, ❤, ☀
//     and friends). These render as ordinary text unless followed by the
//     emoji presentation selector U+FE0F, so they are stripped only when
//     their cluster carries that selector.
//
// The skin tone modifiers U+1F3FB..U+1F3FF are deliberately absent from both
// tables: a modifier with no preceding emoji base is not emoji on its own.

type runeRange struct {
	lo, hi rune
}

// presentationRanges must stay sorted by lo for the binary search in inRanges.
var presentationRanges = []runeRange{
	{0x231A, 0x231B},   // watch, hourglass
	{0x23E9, 0x23EC},   // fast-forward arrows
	{0x23F0, 0x23F0},   // alarm clock
	{0x23F3, 0x23F3},   // hourglass flowing
	{0x25FD, 0x25FE},   // small squares
	{0x2614, 0x2615},   // umbrella with rain, hot beverage
	{0x2648, 0x2653},   // zodiac
	{0x267F, 0x267F},   // wheelchair
	{0x2693, 0x2693},   // anchor
	{0x26A1, 0x26A1},   // high voltage
	{0x26AA, 0x26AB},   // circles
	{0x26BD, 0x26BE},   // soccer, baseball
	{0x26C4, 0x26C5},   // snowman, sun behind cloud
	{0x26CE, 0x26CE},   // ophiuchus
	{0x26D4, 0x26D4},   // no entry
	{0x26EA, 0x26EA},   // church
	{0x26F2, 0x26F3},   // fountain, golf
	{0x26F5, 0x26F5},   // sailboat
	{0x26FA, 0x26FA},   // tent
	{0x26FD, 0x26FD},   // fuel pump
	{0x2705, 0x2705},   // check mark button
	{0x270A, 0x270B},   // fists
	{0x2728, 0x2728},   // sparkles
	{0x274C, 0x274C},   // cross mark
	{0x274E, 0x274E},   // cross mark button
	{0x2753, 0x2755},   // question/exclamation ornaments
	{0x2757, 0x2757},   // exclamation mark
	{0x2795, 0x2797},   // heavy plus/minus/divide
	{0x27B0, 0x27B0},   // curly loop
	{0x27BF, 0x27BF},   // double curly loop
	{0x2B1B, 0x2B1C},   // large squares
	{0x2B50, 0x2B50},   // star
	{0x2B55, 0x2B55},   // hollow red circle
	{0x1F004, 0x1F004}, // mahjong red dragon
	{0x1F0CF, 0x1F0CF}, // joker
	{0x1F18E, 0x1F18E}, // AB button
	{0x1F191, 0x1F19A}, // squared CL..VS
	{0x1F1E6, 0x1F1FF}, // regional indicators
	{0x1F201, 0x1F201}, // squared katakana koko
	{0x1F21A, 0x1F21A}, // squared CJK "free of charge"
	{0x1F22F, 0x1F22F}, // squared CJK "reserved"
	{0x1F232, 0x1F236}, // squared CJK ideographs
	{0x1F238, 0x1F23A}, // squared CJK ideographs
	{0x1F250, 0x1F251}, // circled CJK ideographs
	{0x1F300, 0x1F320}, // weather, landscapes
	{0x1F32D, 0x1F335}, // food, plants
	{0x1F337, 0x1F37C}, // plants, food, drink
	{0x1F37E, 0x1F393}, // celebration, objects
	{0x1F3A0, 0x1F3CA}, // entertainment, sport
	{0x1F3CF, 0x1F3D3}, // sport equipment
	{0x1F3E0, 0x1F3F0}, // buildings
	{0x1F3F4, 0x1F3F4}, // black flag
	{0x1F3F8, 0x1F3FA}, // sport equipment, amphora
	{0x1F400, 0x1F43E}, // animals
	{0x1F440, 0x1F440}, // eyes
	{0x1F442, 0x1F4FC}, // body parts, people, objects
	{0x1F4FF, 0x1F53D}, // objects, symbols
	{0x1F54B, 0x1F54E}, // religious buildings
	{0x1F550, 0x1F567}, // clock faces
	{0x1F57A, 0x1F57A}, // man dancing
	{0x1F595, 0x1F596}, // hand gestures
	{0x1F5A4, 0x1F5A4}, // black heart
	{0x1F5FB, 0x1F64F}, // places, emoticons, gestures
	{0x1F680, 0x1F6C5}, // transport and map
	{0x1F6CC, 0x1F6CC}, // person in bed
	{0x1F6D0, 0x1F6D2}, // place of worship, stop sign, cart
	{0x1F6D5, 0x1F6D7}, // hindu temple, hut, elevator
	{0x1F6DC, 0x1F6DF}, // wireless, playground, wheel, ring buoy
	{0x1F6EB, 0x1F6EC}, // airplane departure/arrival
	{0x1F6F4, 0x1F6FC}, // scooters, vehicles
	{0x1F7E0, 0x1F7EB}, // colored circles and squares
	{0x1F7F0, 0x1F7F0}, // heavy equals sign
	{0x1F90C, 0x1F93A}, // supplemental gestures, people
	{0x1F93C, 0x1F945}, // wrestling, sport
	{0x1F947, 0x1F9FF}, // medals, faces, creatures, objects
	{0x1FA70, 0x1FA7C}, // extended-A objects
	{0x1FA80, 0x1FA89}, // extended-A objects
	{0x1FA8F, 0x1FAC6}, // extended-A symbols, people
	{0x1FACE, 0x1FADC}, // extended-A animals, food
	{0x1FADF, 0x1FAE9}, // extended-A faces
	{0x1FAF0, 0x1FAF8}, // extended-A hands
}

// textDefaultRanges is intentionally coarse: a presentation selector after a
// code point outside the emoji repertoire has no meaning, so over-matching
// here cannot misclassify ordinary text.
var textDefaultRanges = []runeRange{
	{0x00A9, 0x00A9}, // copyright
	{0x00AE, 0x00AE}, // registered
	{0x203C, 0x203C}, // double exclamation
	{0x2049, 0x2049}, // exclamation question
	{0x2122, 0x2122}, // trade mark
	{0x2139, 0x2139}, // information
	{0x2194, 0x2199}, // arrows
	{0x21A9, 0x21AA}, // hooked arrows
	{0x2300, 0x23FF}, // technical symbols
	{0x24C2, 0x24C2}, // circled M
	{0x25AA, 0x25FF}, // geometric shapes
	{0x2600, 0x27BF}, // misc symbols, dingbats
	{0x2934, 0x2935}, // curved arrows
	{0x2B00, 0x2B55}, // arrows, shapes
	{0x3030, 0x3030}, // wavy dash
	{0x303D, 0x303D}, // part alternation mark
	{0x3297, 0x3297}, // circled congratulations
	{0x3299, 0x3299}, // circled secret
	{0x1F000, 0x1FAFF},
}

func inRanges(r rune, ranges []runeRange) bool {
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].hi >= r })
	return i < len(ranges) && ranges[i].lo <= r
}
