package selmao

import t "github.com/dekarrin/valsiparse/internal/token"

// Each row below is a direct transcription of the corresponding table in the
// reference parser's selmao.i (vowel_cmavo, b_cmavo, c_cmavo, ...). Index j
// is the vowel-pattern code produced by VowelCode; a cell holds the selma'o
// that the cmavo formed by [consonant +] that vowel pattern belongs to.

var vowelRow = [46]t.Category{
	t.A, t.UI, t.UI, t.UI, t.UI, t.UI, t.UI,
	t.UI, t.A, t.UI, t.UI, t.UI, t.UI, t.UI,
	t.UI, t.I, t.UI, t.UI, t.UI, t.UI, t.UI,
	t.A, t.UI, t.UI, t.UI, t.UI, t.UI, t.UI,
	t.A, t.UI, t.UI, t.UI, t.UI, t.UI, t.Y,
	t.UI, t.UI, t.UI, t.UI, t.UI,
	t.UI, t.UI, t.UI, t.UI, t.UI,
	t.BY,
}

var bRow = [46]t.Category{
	t.PU, t.UI, t.BAhE, t.BAI, t.ZAhO, t.UI, t.BAI,
	t.BAI, t.BE, t.FAhA, t.COI, t.BAI, t.BEhO, t.UI,
	t.BEI, t.PA, unk, unk, t.BIhI, t.BIhI, t.UI,
	t.BO, unk, unk, unk, unk, unk, t.BOI,
	t.BU, t.GOhA, t.GOhA, t.GOhA, unk, t.FAhA, t.BY,
}

var cRow = [46]t.Category{
	t.PU, t.CAhA, t.UI, t.BAI, t.ZAhO, t.FAhA, t.CAI,
	t.BAI, t.JOI, t.LAU, unk, t.PA, t.JOI, unk,
	t.CEI, t.PA, unk, t.BAI, t.PA, t.BAI, t.BAI,
	t.CO, t.ZAhO, t.GOhA, t.ZAhO, t.COI, t.ZAhO, t.COI,
	t.CU, t.VUhU, t.CUhE, t.CAI, t.MOI, t.BAI, t.BY,
}

var dRow = [46]t.Category{
	t.KOhA, t.PA, t.KOhA, t.UI, t.DAhO, t.KOhA, t.UI,
	t.PA, t.KOhA, t.ZAhO, t.KOhA, t.BAI, t.VUhU, t.KOhA,
	t.KOhA, t.KOhA, t.ZAhO, t.KOhA, t.TAhE, t.BAI, t.KOhA,
	t.KOhA, t.UI, t.BAI, t.KOhA, t.KOhA, t.DOhU, t.DOI,
	t.GOhA, t.FAhA, t.PA, t.BAI, t.BAI, t.NU, t.BY,
}

var fRow = [46]t.Category{
	t.FA, t.FAhA, t.BAI, t.VUhU, t.FAhO, t.JOI, t.FA,
	t.BAI, t.FA, t.VUhU, t.FEhE, t.VUhU, t.COI, t.FEhU,
	t.PA, t.FA, t.FA, t.BAI, t.COI, t.FIhO, t.PA,
	t.FA, t.KOhA, t.KOhA, t.KOhA, t.KOhA, t.KOhA, t.FOI,
	t.FA, t.FUhA, t.FUhE, t.UI, t.FUhO, t.VUhU, t.BY,
}

var gRow = [46]t.Category{
	t.GA, t.BAI, t.BY, t.UI, t.GAhO, t.FAhA, t.PA,
	t.BAI, t.GA, t.VUhU, t.UI, t.GA, t.BY, t.GEhU,
	t.VUhU, t.GI, t.GIhA, t.GIhA, t.GIhA, t.GIhA, t.GIhA,
	t.GA, t.GOhA, t.GOhA, t.GOhA, t.GOhA, t.GOhA, t.GOI,
	t.GA, t.GUhA, t.GUhA, t.GUhA, t.GUhA, t.GUhA, t.BY,
}

var jRow = [46]t.Category{
	t.JA, t.NA, t.BAI, t.BAI, t.UI, unk, t.JAI,
	t.PA, t.JA, t.NAhE, t.COI, t.JA, t.BY, t.UI,
	t.NU, t.A, t.UI, t.BAI, t.PA, t.BAI, t.BAI,
	t.JA, t.UI, t.JOI, t.JOhI, t.BY, t.JOI, t.JOI,
	t.JA, t.UI, unk, t.COI, t.UI, t.VUhU, t.BY,
}

var kRow = [46]t.Category{
	t.NU, t.BAI, t.CAhA, t.BAI, t.PA, t.UI, t.BAI,
	t.UI, t.KE, t.KOhA, t.KEhE, t.GAhO, t.COI, t.UI,
	t.KEI, t.KI, t.UI, t.COI, t.BAI, t.PA, t.BAI,
	t.KOhA, t.KOhA, t.KOhA, t.KOhA, t.KOhA, t.KOhA,
	t.BAI, t.KU, t.JOI, t.KUhE, t.UI, t.KUhO,
	t.BAI, t.BY,
}

var lRow = [46]t.Category{
	t.LA, t.UI, t.LAhE, t.LA, t.ZOI, t.BAI, t.LA,
	t.LAU, t.LE, t.BAI, t.LE, t.LE, t.UI, t.LEhU,
	t.LE, t.LI, t.UI, t.BAI, t.NU, t.UI, t.LIhU,
	t.LE, t.BY, t.LE, t.LE, t.LOhO, t.LOhU, t.LE,
	t.LU, t.LAhE, t.LAhE, t.LAhE, t.LAhE, t.LUhU, t.BY,
}

var mRow = [46]t.Category{
	t.KOhA, t.KOhA, t.BAI, t.BAI, t.MAhO, t.PA, t.MAI,
	t.BAI, t.ME, t.BAI, t.BAI, t.PA, t.LI, t.MEhU,
	t.MOI, t.KOhA, t.KOhA, t.COI, t.BIhI, t.KOhA, t.UI,
	t.GOhA, t.PA, t.MOhE, t.MOhI, t.MAI, t.ZAhO, t.MOI,
	t.PA, t.UI, t.NU, t.BAI, t.COI, t.BAI, t.BY,
}

var nRow = [46]t.Category{
	t.NA, t.BY, t.NAhE, t.UI, t.TAhE, t.NAhU, t.NAI,
	t.CUhE, t.GOI, t.FAhA, unk, t.FAhA, t.VUhU, t.FAhA,
	t.GOhA, t.NU, t.FAhA, t.NIhE, t.BAI, t.NIhO, t.PA,
	t.PA, t.GOhA, t.NAhE, t.NIhO, t.PA, t.GOI, t.NOI,
	t.NU, t.NUhA, t.COI, t.NUhI, t.CAhA, t.NUhU, t.BY,
}

var pRow = [46]t.Category{
	t.PA, t.BAI, t.UI, t.VUhU, t.FAhA, t.BAI, t.PA,
	t.UI, t.GOI, t.UI, unk, t.UI, t.PEhO, t.COI,
	t.CAI, t.PA, t.VUhU, t.PA, t.VUhU, t.BAI, t.JOI,
	t.GOI, unk, t.GOI, t.BAI, unk, t.GOI, t.NOI,
	t.PU, t.BAI, t.BAI, t.CAhA, t.ZAhO, t.NU, t.BY,
}

var rRow = [46]t.Category{
	t.KOhA, t.BAI, t.PA, t.BAI, t.RAhO, t.UI, t.BAI,
	t.PA, t.PA, t.VUhU, t.UI, t.COI, t.FAhA, unk,
	t.PA, t.KOhA, t.BAI, t.UI, t.BAI, t.VUhU, t.FAhA,
	t.PA, t.UI, t.UI, t.UI, t.UI, t.UI, t.ROI,
	t.KOhA, t.UI, t.CAI, t.TAhE, t.BY, t.FAhA, t.BY,
}

var sRow = [46]t.Category{
	t.SA, t.UI, t.UI, t.VUhU, t.VUhU, t.UI, t.CAI,
	t.BAI, t.SE, t.UI, t.BY, t.UI, t.UI, t.SEhU,
	t.SEI, t.SI, t.UI, t.MOI, t.VUhU, t.NU, t.BAI,
	t.PA, t.PA, t.PA, t.PA, t.PA, t.PA, t.SOI,
	t.SU, t.UI, t.PA, t.VUhU, t.PA, t.NU, t.BY,
}

var tRow = [46]t.Category{
	t.KOhA, t.COI, t.TAhE, t.BAI, t.UI, t.UI, t.BAI,
	t.LAU, t.SE, t.VUhU, t.FAhA, unk, t.PA, t.TEhU,
	t.TEI, t.KOhA, t.FAhA, t.UI, t.BAI, t.SEI, t.BAI,
	t.TO, t.BY, t.NAhE, t.TO, t.FAhA, t.UI, t.TOI,
	t.KOhA, t.LAhE, t.TUhE, t.BAI, t.PA, t.TUhU, t.BY,
}

var vRow = [46]t.Category{
	t.VA, t.VUhU, unk, t.UI, t.BAI, t.BAI, t.PA,
	t.VAU, t.SE, t.VEhA, t.VEhA, t.VEhA, t.VEhO, t.VEhA,
	t.VEI, t.VA, t.VIhA, t.VIhA, t.VIhA, t.COI, t.VIhA,
	t.PA, t.KOhA, t.KOhA, t.KOhA, t.KOhA, t.KOhA, t.NOI,
	t.VA, t.FAhA, t.UI, t.LAhE, unk, t.VUhU, t.BY,
}

var xRow = [46]t.Category{
	t.PA, xai, xai, xai, xai, xai, xai,
	xai, t.SE, xai, xai, xai, xai, xai,
	xai, t.XI, xai, xai, xai, xai, xai,
	t.PA, xai, xai, xai, xai, xai, xai,
	t.UI, xai, xai, xai, xai, xai, t.BY,
}

var zRow = [46]t.Category{
	t.ZI, t.UI, t.BAhE, t.NU, t.ZAhO, t.PA, t.LAU,
	t.BAI, t.PA, t.ZEhA, t.ZEhA, t.ZEhA, t.FAhA, t.ZEhA,
	t.ZEI, t.ZI, unk, t.ZIhE, unk, t.KOhA, unk,
	t.ZO, t.FAhA, t.KOhA, t.FAhA, t.UI, t.ZOhU, t.ZOI,
	t.ZI, t.FAhA, t.BAI, t.KOhA, t.NU, t.UI, t.BY,
}
