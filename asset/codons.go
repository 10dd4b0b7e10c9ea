package asset

// DefaultConfig is the built-in HCL document: field geometry, spawner timing
// and the full codon table. Files passed with -config are layered over it.
const DefaultConfig = `
grid {
  size             = 4
  cell_size        = 50
  margin           = 10
  left             = 30
  top              = 10
  commit_jitter_ms = 40
  delay_unit_ms    = 300
  hue              = 23
  sat              = 30
  lum              = 50
}

spawner {
  enabled     = true
  interval_ms = 500
  batch       = 3
  waves       = 3
  wave_gap_ms = 400
}

# Codons are three letters from S, N, O, W. Ops run in order; each pattern is
# read row by row over the field, one symbol per cell, through the axis table.

codon "SSS" {
  op "delay" {
    pattern = [
      "21 3",
      "21 3",
      "21 3",
      "21 4",
    ]
  }
  op "translate" {
    pattern = [
      "→→→↘",
      "→→→↘",
      "→→→↘",
      "→→→↘",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "SSN" {
  op "rot" {
    pattern = [
      "RLRL",
      "    ",
      "    ",
      "  r ",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "SSO" {
  op "rot" {
    pattern = [
      " L  ",
      " L  ",
      "L L ",
      "   L",
    ]
  }
  op "lum" {
    pattern = [
      " L  ",
      " L  ",
      "L L ",
      "   L",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "SSW" {
  op "rot" {
    pattern = [
      "    ",
      "    ",
      "RRRR",
      "    ",
    ]
  }
  op "lum" {
    pattern = [
      "    ",
      "    ",
      "RRRR",
      "    ",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "SNS" {
  op "rot" {
    pattern = [
      "  R ",
      "  R ",
      "  R ",
      "  R ",
    ]
  }
  op "lum" {
    pattern = [
      "  R ",
      "  R ",
      "  R ",
      "  R ",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "SNN" {
  op "delay" {
    pattern = [
      "  11",
      "  11",
      "11  ",
      "11  ",
    ]
  }
  op "translate" {
    pattern = [
      "↓←↓←",
      "↓↑←↑",
      "↓→↓↑",
      "→↑→↑",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "SNO" {
  op "delay" {
    pattern = [
      "11  ",
      "11  ",
      "  11",
      "  11",
    ]
  }
  op "translate" {
    pattern = [
      "→↓→↓",
      "↑←↑←",
      "→↓→↓",
      "↑←↑←",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "SNW" {
  op "delay" {
    pattern = [
      "  11",
      "  11",
      "11  ",
      "11  ",
    ]
  }
  op "translate" {
    pattern = [
      "↓←↓←",
      "→↑→↑",
      "↓←↓←",
      "→↑→↑",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "SOS" {
  op "delay" {
    pattern = [
      "3113",
      "2  2",
      "2  2",
      "2  2",
    ]
  }
  op "translate" {
    pattern = [
      "↖↗↖↗",
      "↖↗↖↗",
      "↖↗↖↗",
      "↖↗↖↗",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "SON" {
  op "delay" {
    pattern = [
      "1111",
      "1  1",
      "1  1",
      "1111",
    ]
  }
  op "translate" {
    pattern = [
      "→→→↓",
      "↑→↓↓",
      "↑↑←↓",
      "↑←←←",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "SOO" {
  op "delay" {
    pattern = [
      " 11 ",
      "3223",
      "2112",
      "3333",
    ]
  }
  op "translate" {
    pattern = [
      "↓↓↓↓",
      "↓↓↓↓",
      "↓↓↓↓",
      "↓↓↓↓",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "SOW" {
  op "scale" {
    pattern = [
      "↑↓↑↓",
      "↓↑↓↑",
      "↑↓↑↓",
      "↓↑↓↑",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "SWS" {
  op "scale" {
    pattern = [
      " ↑↓ ",
      "↑↑↓↓",
      "↓↓↑↑",
      " ↓↑ ",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "SWN" {
  op "rot" {
    pattern = [
      "RLRL",
      "LRLR",
      "RLRL",
      "LRLR",
    ]
  }
  op "hue" {
    pattern = [
      "↑↓↑↓",
      "↓↑↓↑",
      "↑↓↑↓",
      "↓↑↓↑",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "SWO" {
  op "rot" {
    pattern = [
      " RL ",
      "RRLL",
      "LLRR",
      " LR ",
    ]
  }
  op "hue" {
    pattern = [
      " ↑↓ ",
      "↑↑↓↓",
      "↓↓↑↑",
      " ↓↑ ",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "SWW" {
  op "rot" {
    pattern = [
      " L  ",
      " L  ",
      "L L ",
      "   L",
    ]
  }
  op "lum" {
    pattern = [
      " L  ",
      " L  ",
      "L L ",
      "   L",
    ]
  }
  op "hue" {
    pattern = [
      " ↑  ",
      " ↑  ",
      "↑ ↑ ",
      "   ↑",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "NSS" {
  op "rot" {
    pattern = [
      " RL ",
      "RRLL",
      "LLRR",
      " LR ",
    ]
  }
  op "sat" {
    pattern = [
      " RL ",
      "RRLL",
      "LLRR",
      " LR ",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "NSN" {
  op "rot" {
    pattern = [
      "RLRL",
      "LRLR",
      "RLRL",
      "LRLR",
    ]
  }
  op "sat" {
    pattern = [
      "RLRL",
      "LRLR",
      "RLRL",
      "LRLR",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "NSO" {
  op "rot" {
    pattern = [
      " RL ",
      "RRLL",
      "LLRR",
      " LR ",
    ]
  }
  op "lum" {
    pattern = [
      " RL ",
      "RRLL",
      "LLRR",
      " LR ",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "NSW" {
  op "rot" {
    pattern = [
      "RLRL",
      "LRLR",
      "RLRL",
      "LRLR",
    ]
  }
  op "lum" {
    pattern = [
      "RLRL",
      "LRLR",
      "RLRL",
      "LRLR",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "NNS" {
  op "delay" {
    pattern = [
      "3 23",
      "211 ",
      " 112",
      "32 3",
    ]
  }
  op "translate" {
    pattern = [
      "←→↘↑",
      "↗→↓↓",
      "↑↑←↙",
      "↓↖←→",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "NNN" {
  op "delay" {
    pattern = [
      "3 23",
      "211 ",
      " 112",
      "32 3",
    ]
  }
  op "translate" {
    pattern = [
      "←→↘↑",
      "↗→↓↓",
      "↑↑←↙",
      "↓↖←→",
      " ↘↓ ",
      "→  ↙",
      "↗  ←",
      " ↑↖ ",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "NNO" {
  op "delay" {
    pattern = [
      "1 1 ",
      "2322",
      "2232",
      " 1 1",
    ]
  }
  op "translate" {
    pattern = [
      "→↓→↓",
      "↑→↑↓",
      "↑↓←↓",
      "↑←↑←",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "NNW" {
  op "delay" {
    pattern = [
      "1   ",
      "    ",
      "    ",
      "   1",
    ]
  }
  op "rot" {
    pattern = [
      "l  l",
      "    ",
      "    ",
      "r  r",
    ]
  }
  op "translate" {
    pattern = [
      "↖  ↗",
      "    ",
      "    ",
      "↙  ↘",
    ]
  }
  op "commit" { pattern = ["m"] }
}

codon "NOS" {}

codon "NON" {}

codon "NOO" {}

codon "NOW" {}

codon "NWS" {}

codon "NWN" {}

codon "NWO" {}

codon "NWW" {}

codon "OSS" {}

codon "OSN" {}

codon "OSO" {}

codon "OSW" {}

codon "ONS" {}

codon "ONN" {}

codon "ONO" {}

codon "ONW" {}

codon "OOS" {}

codon "OON" {}

codon "OOO" {}

codon "OOW" {}

codon "OWS" {}

codon "OWN" {}

codon "OWO" {}

codon "OWW" {}

codon "WSS" {}

codon "WSN" {}

codon "WSO" {}

codon "WSW" {}

codon "WNS" {}

codon "WNN" {}

codon "WNO" {}

codon "WNW" {}

codon "WOS" {}

codon "WON" {}

codon "WOO" {}

codon "WOW" {}

codon "WWS" {}

codon "WWN" {}

codon "WWO" {}

codon "WWW" {}
`
