// Package pid synthesizes Generation 5 PIDs and genders under constraints.
//
// A PID is a 32-bit value whose bits double as game traits: the low byte
// decides gender against the species' gender ratio, bit 16 selects the
// ability slot, and the two 16-bit halves XORed with the trainer's TID and
// SID decide whether the entity is shiny.
//
// # Basic Usage
//
// Build a Request and let the synthesizer draw from a caller-owned seed:
//
//	req := pid.Request{
//	    Ratio:   pid.Ratio1to1,
//	    Trainer: pid.Trainer{TID: 12345, SID: 54321},
//	    Criteria: pid.Criteria{
//	        Gender:  pid.Female,
//	        Ability: pid.AbilityFirst,
//	        Shiny:   pid.ShinyNever,
//	    },
//	}
//	var rec pid.Record
//	seed := uint64(0x1234)
//	pid.Synthesize(&rec, &seed, req)
//
// Synthesize keeps drawing until every criterion holds, exactly as the game
// does. A request that can never be met loops forever, so library callers
// that accept outside input should run Request.Check first, or use
// SynthesizeN which gives up after a fixed number of attempts:
//
//	attempts, err := pid.SynthesizeN(&rec, &seed, req, 1<<16)
//	if pid.Unsatisfiable.Has(err) {
//	    // criteria conflict or the cap was hit
//	}
//
// # Auxiliary Adjustment
//
// Wild encounters in the games flip bit 31 when the top bit, the bottom bit
// and the parity of TID^SID disagree. The check reads the wrong bits to do
// what it was meant to do, so it does not raise the shiny rate. Request.Adjust
// enables it and the bit selection is kept as the games have it.
package pid
