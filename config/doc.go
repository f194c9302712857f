// Package config defines the typed configuration tree that selects and
// parameterizes a moment-inversion algorithm, together with parsers for
// the two supported textual forms.
//
// The dictionary form follows the block grammar of the solver input files
// this library is embedded in:
//
//	qbmm_type cqmom;
//	qbmm_setup
//	{
//	    config1d
//	    (
//	        {
//	            qbmm_type qmom;
//	            qbmm_setup
//	            {
//	                inv_type wheeler;
//	                adaptive 1;
//	                rmin     1e-8;
//	                eabs     1e-8;
//	            }
//	        };
//	        {
//	            qbmm_type eqmom;
//	            qbmm_setup
//	            {
//	                kernel_type gauss;
//	                n_ab        50;
//	                atol        1e-9;
//	            }
//	        };
//	    );
//	}
//
// The same tree can be given as YAML with identical key names. Boolean
// flags accept 0/1 as well as true/false in both forms.
//
// The tree is validated once, at build time, so that malformed input
// surfaces as ErrInvalidConfig before any inversion runs; the set of
// recognized qbmm_type and inv_type names is owned by the quadmom
// dispatcher, not by this package.
package config
