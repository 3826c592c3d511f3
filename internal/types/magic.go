/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

// Magic holds all magic bitboards relevant for a single square
// Taken from Stockfish
// License see https://stockfishchess.org/about/
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

// rookMagicNumbers and bishopMagicNumbers are fixed magic multipliers, one
// per square, that have already been verified to perfectly hash every
// occupancy subset of that square's relevant-occupancy mask into a
// collision-free index. Unlike Stockfish, which searches for a magic number
// at startup with a seeded PrnG, these are baked in - table construction
// below just has to build the Attacks[] entries for the known-good magic.
//
// @formatter:off
var rookMagicNumbers = [SqLength]Bitboard{
	0xA8002C000108020, 0x4440200140003000, 0x8080200010011880, 0x380180080141000,
	0x1A00060008211044, 0x410001000A0C0008, 0x9500060004008100, 0x100024284A20700,
	0x802140008000, 0x80C01002A00840, 0x402004282011020, 0x9862000820420050,
	0x1001448011100, 0x6432800200800400, 0x40100010002000C, 0x2800D0010C080,
	0x90C0008000803042, 0x4010004000200041, 0x3010010200040, 0xA40828028001000,
	0x123010008000430, 0x24008004020080, 0x60040001104802, 0x582200028400D1,
	0x4000802080044000, 0x408208200420308, 0x610038080102000, 0x3601000900100020,
	0x80080040180, 0xC2020080040080, 0x80084400100102, 0x4022408200014401,
	0x40052040800082, 0xB08200280804000, 0x8A80A008801000, 0x4000480080801000,
	0x911808800801401, 0x822A003002001894, 0x401068091400108A, 0x4A10A00004C,
	0x2000800640008024, 0x1486408102020020, 0x100A000D50041, 0x810050020B0020,
	0x204000800808004, 0x20048100A000C, 0x112000831020004, 0x9000040810002,
	0x440490200208200, 0x8910401000200040, 0x6404200050008480, 0x4B824A2010010100,
	0x4080801810C0080, 0x400802A0080, 0x8224080110026400, 0x40002C4104088200,
	0x1002100104A0282, 0x1208400811048021, 0x3201014A40D02001, 0x5100019200501,
	0x101000208001005, 0x2008450080702, 0x1002080301D00C, 0x410201CE5C030092,
}

var bishopMagicNumbers = [SqLength]Bitboard{
	0x40210414004040, 0x2290100115012200, 0xA240400A6004201, 0x80A0420800480,
	0x4022021000000061, 0x31012010200000, 0x4404421051080068, 0x1040882015000,
	0x8048C01206021210, 0x222091024088820, 0x4328110102020200, 0x901CC41052000D0,
	0xA828C20210000200, 0x308419004A004E0, 0x4000840404860881, 0x800008424020680,
	0x28100040100204A1, 0x82001002080510, 0x9008103000204010, 0x141820040C00B000,
	0x81010090402022, 0x14400480602000, 0x8A008048443C00, 0x280202060220,
	0x3520100860841100, 0x9810083C02080100, 0x41003000620C0140, 0x6100400104010A0,
	0x20840000802008, 0x40050A010900A080, 0x818404001041602, 0x8040604006010400,
	0x1028044001041800, 0x80B00828108200, 0xC000280C04080220, 0x3010020080880081,
	0x10004C0400004100, 0x3010020200002080, 0x202304019004020A, 0x4208A0000E110,
	0x108018410006000, 0x202210120440800, 0x100850C828001000, 0x1401024204800800,
	0x41028800402, 0x20642300480600, 0x20410200800202, 0xCA02480845000080,
	0x140C404A0080410, 0x2180A40108884441, 0x4410420104980302, 0x1108040046080000,
	0x8141029012020008, 0x894081818082800, 0x40020404628000, 0x804100C010C2122,
	0x8168210510101200, 0x1088148121080, 0x204010100C11010, 0x1814102013841400,
	0xC00010020602, 0x1045220C040820, 0x12400808070840, 0x2004012A040132,
}

// @formatter:on

// initMagics builds the Attacks[] table for every square from a fixed,
// pre-verified magic number instead of searching for one at startup. For
// each square it computes the relevant-occupancy mask, enumerates every
// subset of that mask with the Carry-Rippler trick and stores the sliding
// attack for that subset at the index the fixed magic number hashes it to.
func initMagics(table *[]Bitboard, magics *[64]Magic, directions *[4]Direction, magicNumbers *[SqLength]Bitboard) {
	var edges, b Bitboard
	size := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		// Board edges are not considered in the relevant occupancies
		edges = ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())

		m := &(*magics)[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())
		m.Magic = magicNumbers[sq]

		// Set the offset for the attacks table of the square. We have individual
		// table sizes for each square with "Fancy Magic Bitboards".
		if sq == SqA1 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:] // instead of pointer offset use slice offset
		}

		// Use Carry-Rippler trick to enumerate all subsets of mask and store
		// the corresponding sliding attack bitboard at its magic index.
		// https://www.chessprogramming.org/Traversing_Subsets_of_a_Set
		b = 0
		size = 0
		for {
			idx := m.index(b)
			m.Attacks[idx] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 { // do - while(b)
				break
			}
		}
	}
}

// slidingAttack calculate sliding attacks along the given directions for the given square
// and the given board occupation. Uses loop in loop and is not very efficient.
// Doesn't matter for pre-computing but should not be used during move gen or search
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for i := 0; i < 4; i++ {
		s := sq
		for {
			s = s.To(directions[i])
			if !s.IsValid() {
				break
			}
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
			if !s.To(directions[i]).IsValid() || SquareDistance(s, s.To(directions[i])) != 1 {
				break
			}
		}
	}
	return attack
}

// Index calculates the index in the table for the attacks
// https://www.chessprogramming.org/Magic_Bitboards
//  occ      &= mBishopTbl[sq].mask;
//  occ      *= mBishopTbl[sq].magic;
//  occ     >>= mBishopTbl[sq].shift;
func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Magic
	occ >>= m.Shift
	return uint(occ)
}
