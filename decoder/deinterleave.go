package decoder

import (
	"fmt"

	"github.com/go-qr/qrcore/internal/gf256"
	"github.com/go-qr/qrcore/qrcodeecc"
	"github.com/go-qr/qrcore/qrerror"
	"github.com/go-qr/qrcore/version"
)

// deinterleaveAndCorrect is the inverse of the encoder's addEccAndInterleave:
// it splits the raw codeword stream read off the matrix back into its
// Reed-Solomon blocks, corrects each block, and concatenates the
// corrected data portions back into the original codeword order. It
// returns the number of symbol errors repaired across all blocks.
func deinterleaveAndCorrect(ver version.Version, ecl qrcodeecc.QrCodeEcc, raw []byte) ([]byte, int, error) {
	numblocks := ver.NumErrorCorrectionBlocks(ecl)
	blockecclen := ver.EccCodewordsPerBlock(ecl)
	rawcodewords := ver.NumRawDataModules() / 8
	numshortblocks := numblocks - (rawcodewords % numblocks)
	shortblocklen := rawcodewords / numblocks

	blocks := make([][]byte, numblocks)
	for j := range blocks {
		blocks[j] = make([]byte, shortblocklen+1)
	}

	var idx uint
	for i, max := uint(0), shortblocklen+1; i < max; i++ {
		for j := uint(0); j < numblocks; j++ {
			if i != shortblocklen-blockecclen || j >= numshortblocks {
				if idx >= uint(len(raw)) {
					return nil, 0, fmt.Errorf("%w: raw codeword stream shorter than expected", qrerror.ErrReedSolomonFailure)
				}
				blocks[j][i] = raw[idx]
				idx++
			}
		}
	}

	result := make([]byte, 0, ver.NumDataCodewords(ecl))
	var totalCorrected int
	for j, block := range blocks {
		var codeword []byte
		var datlen uint
		if uint(j) < numshortblocks {
			datlen = shortblocklen - blockecclen
			codeword = make([]byte, 0, shortblocklen)
			codeword = append(codeword, block[:datlen]...)
			codeword = append(codeword, block[datlen+1:]...)
		} else {
			datlen = shortblocklen - blockecclen + 1
			codeword = block
		}

		corrected, err := gf256.Correct(codeword, int(blockecclen))
		if err != nil {
			return nil, 0, err
		}
		totalCorrected += corrected
		result = append(result, codeword[:datlen]...)
	}

	return result, totalCorrected, nil
}
