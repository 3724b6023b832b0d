package hwintrin

// Opcode identifies a native instruction the back-end can emit.  OpInvalid is
// the explicit "unsupported for this element type" sentinel used by the
// per-element-type opcode rows.
type Opcode uint16

// Enumeration of the native opcodes referenced by the intrinsic table.
const (
	OpInvalid Opcode = iota

	// SSE
	OpAddps
	OpAddss
	OpSubps
	OpMulps
	OpDivps
	OpSqrtps
	OpSqrtss
	OpMaxps
	OpMinps
	OpCmpps
	OpShufps
	OpMovups
	OpMovaps
	OpMovss
	OpMovmskps
	OpCvtss2si
	OpCvtsi2ss
	OpPrefetcht0

	// SSE2
	OpPaddb
	OpPaddw
	OpPaddd
	OpPaddq
	OpPsubb
	OpPsubw
	OpPsubd
	OpPsubq
	OpPmullw
	OpAddpd
	OpSubpd
	OpMulpd
	OpDivpd
	OpSqrtpd
	OpCmppd
	OpPcmpeqb
	OpPcmpeqw
	OpPcmpeqd
	OpPsllw
	OpPslld
	OpPsllq
	OpPsrlw
	OpPsrld
	OpPsrlq
	OpPshufd
	OpPshufhw
	OpPshuflw
	OpShufpd
	OpPextrw
	OpPinsrw
	OpMovdqu
	OpMovdqa
	OpMovupd
	OpMovapd
	OpMovq
	OpMovsd
	OpMaskmovdqu
	OpPmovmskb
	OpMovmskpd
	OpCvtsd2si
	OpMovnti

	// SSE3
	OpHaddps
	OpHaddpd
	OpMovddup
	OpLddqu

	// SSSE3
	OpPabsb
	OpPabsw
	OpPabsd
	OpPalignr
	OpPshufb
	OpPhaddw
	OpPhaddd

	// SSE4.1
	OpPblendw
	OpBlendps
	OpBlendpd
	OpDpps
	OpDppd
	OpExtractps
	OpInsertps
	OpRoundps
	OpRoundpd
	OpPmulld
	OpPtest

	// SSE4.2
	OpCrc32
	OpPcmpgtq

	// AVX
	OpVperm2f128
	OpVextractf128
	OpVinsertf128
	OpVbroadcastss
	OpVbroadcastsd
	OpVmaskmovps
	OpVmaskmovpd
	OpVtestps
	OpVtestpd
	OpCvtdq2pd
	OpCvtps2pd
	OpMovntps
	OpMovntpd
	OpMovntdq

	// AVX2
	OpVpermq
	OpVpbroadcastb
	OpVpbroadcastw
	OpVpbroadcastd
	OpVpbroadcastq
	OpVpgatherdd
	OpVpgatherdq
	OpVgatherdps
	OpVgatherdpd

	// AES
	OpAesenc
	OpAesdec

	// BMI1 / BMI2
	OpAndn
	OpBlsi
	OpBlsr
	OpTzcnt
	OpBzhi
	OpPdep
	OpPext
	OpMulx

	// LZCNT / PCLMULQDQ / POPCNT
	OpLzcnt
	OpPclmulqdq
	OpPopcnt

	// FMA
	OpVfmadd213ps
	OpVfmadd213pd
	OpVfmadd213ss
	OpVfmadd213sd
	OpVfmsub213ps
	OpVfmsub213pd
)

// opcodeNames maps each opcode to its assembly mnemonic.
var opcodeNames = map[Opcode]string{
	OpAddps:       "addps",
	OpAddss:       "addss",
	OpSubps:       "subps",
	OpMulps:       "mulps",
	OpDivps:       "divps",
	OpSqrtps:      "sqrtps",
	OpSqrtss:      "sqrtss",
	OpMaxps:       "maxps",
	OpMinps:       "minps",
	OpCmpps:       "cmpps",
	OpShufps:      "shufps",
	OpMovups:      "movups",
	OpMovaps:      "movaps",
	OpMovss:       "movss",
	OpMovmskps:    "movmskps",
	OpCvtss2si:    "cvtss2si",
	OpCvtsi2ss:    "cvtsi2ss",
	OpPrefetcht0:  "prefetcht0",
	OpPaddb:       "paddb",
	OpPaddw:       "paddw",
	OpPaddd:       "paddd",
	OpPaddq:       "paddq",
	OpPsubb:       "psubb",
	OpPsubw:       "psubw",
	OpPsubd:       "psubd",
	OpPsubq:       "psubq",
	OpPmullw:      "pmullw",
	OpAddpd:       "addpd",
	OpSubpd:       "subpd",
	OpMulpd:       "mulpd",
	OpDivpd:       "divpd",
	OpSqrtpd:      "sqrtpd",
	OpCmppd:       "cmppd",
	OpPcmpeqb:     "pcmpeqb",
	OpPcmpeqw:     "pcmpeqw",
	OpPcmpeqd:     "pcmpeqd",
	OpPsllw:       "psllw",
	OpPslld:       "pslld",
	OpPsllq:       "psllq",
	OpPsrlw:       "psrlw",
	OpPsrld:       "psrld",
	OpPsrlq:       "psrlq",
	OpPshufd:      "pshufd",
	OpPshufhw:     "pshufhw",
	OpPshuflw:     "pshuflw",
	OpShufpd:      "shufpd",
	OpPextrw:      "pextrw",
	OpPinsrw:      "pinsrw",
	OpMovdqu:      "movdqu",
	OpMovdqa:      "movdqa",
	OpMovupd:      "movupd",
	OpMovapd:      "movapd",
	OpMovq:        "movq",
	OpMovsd:       "movsd",
	OpMaskmovdqu:  "maskmovdqu",
	OpPmovmskb:    "pmovmskb",
	OpMovmskpd:    "movmskpd",
	OpCvtsd2si:    "cvtsd2si",
	OpMovnti:      "movnti",
	OpHaddps:      "haddps",
	OpHaddpd:      "haddpd",
	OpMovddup:     "movddup",
	OpLddqu:       "lddqu",
	OpPabsb:       "pabsb",
	OpPabsw:       "pabsw",
	OpPabsd:       "pabsd",
	OpPalignr:     "palignr",
	OpPshufb:      "pshufb",
	OpPhaddw:      "phaddw",
	OpPhaddd:      "phaddd",
	OpPblendw:     "pblendw",
	OpBlendps:     "blendps",
	OpBlendpd:     "blendpd",
	OpDpps:        "dpps",
	OpDppd:        "dppd",
	OpExtractps:   "extractps",
	OpInsertps:    "insertps",
	OpRoundps:     "roundps",
	OpRoundpd:     "roundpd",
	OpPmulld:      "pmulld",
	OpPtest:       "ptest",
	OpCrc32:       "crc32",
	OpPcmpgtq:     "pcmpgtq",
	OpVperm2f128:  "vperm2f128",
	OpVextractf128: "vextractf128",
	OpVinsertf128: "vinsertf128",
	OpVbroadcastss: "vbroadcastss",
	OpVbroadcastsd: "vbroadcastsd",
	OpVmaskmovps:  "vmaskmovps",
	OpVmaskmovpd:  "vmaskmovpd",
	OpVtestps:     "vtestps",
	OpVtestpd:     "vtestpd",
	OpCvtdq2pd:    "cvtdq2pd",
	OpCvtps2pd:    "cvtps2pd",
	OpMovntps:     "movntps",
	OpMovntpd:     "movntpd",
	OpMovntdq:     "movntdq",
	OpVpermq:      "vpermq",
	OpVpbroadcastb: "vpbroadcastb",
	OpVpbroadcastw: "vpbroadcastw",
	OpVpbroadcastd: "vpbroadcastd",
	OpVpbroadcastq: "vpbroadcastq",
	OpVpgatherdd:  "vpgatherdd",
	OpVpgatherdq:  "vpgatherdq",
	OpVgatherdps:  "vgatherdps",
	OpVgatherdpd:  "vgatherdpd",
	OpAesenc:      "aesenc",
	OpAesdec:      "aesdec",
	OpAndn:        "andn",
	OpBlsi:        "blsi",
	OpBlsr:        "blsr",
	OpTzcnt:       "tzcnt",
	OpBzhi:        "bzhi",
	OpPdep:        "pdep",
	OpPext:        "pext",
	OpMulx:        "mulx",
	OpLzcnt:       "lzcnt",
	OpPclmulqdq:   "pclmulqdq",
	OpPopcnt:      "popcnt",
	OpVfmadd213ps: "vfmadd213ps",
	OpVfmadd213pd: "vfmadd213pd",
	OpVfmadd213ss: "vfmadd213ss",
	OpVfmadd213sd: "vfmadd213sd",
	OpVfmsub213ps: "vfmsub213ps",
	OpVfmsub213pd: "vfmsub213pd",
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}

	return "invalid"
}
