package sku

// SKU field widths. The body is the concatenation of the four encoded
// fields; the size character is appended directly with no separator.
const (
	TypeWordCount       = 2
	TypeLettersEach     = 1
	CollectionWordCount = 2
	CollectionLetters   = 1
	NameWidth           = 3
	ColorWordCount      = 2
	ColorLettersEach    = 1

	// BodyWidth is the fixed width of the SKU before the size character.
	BodyWidth = TypeWordCount*TypeLettersEach +
		CollectionWordCount*CollectionLetters +
		NameWidth +
		ColorWordCount*ColorLettersEach

	// Width is the fixed total width of a composed SKU.
	Width = BodyWidth + 1
)

// Compose builds the fixed-width SKU for the given labels and size.
//
// Layout: 2 characters from the product type words, 2 from the collection
// words, the first 3 characters of the product name, 2 from the color
// words, then the first character of size (PadChar when size is empty).
// Identical inputs always yield the identical 10-character result; no
// input combination fails.
func Compose(productType, collection, productName, color, size string) string {
	body := EncodeWords(productType, TypeWordCount, TypeLettersEach) +
		EncodeWords(collection, CollectionWordCount, CollectionLetters) +
		EncodePrefix(productName, NameWidth) +
		EncodeWords(color, ColorWordCount, ColorLettersEach)

	// Safety net: the per-field widths above always sum to BodyWidth, but
	// the contract must hold even if the field widths are reconfigured.
	body = fitRunes(body, BodyWidth)

	sizeChar := string(PadChar)
	if size != "" {
		sizeChar = take(size, 1)
	}

	return body + sizeChar
}
