/*
Command geobridge predicts galaxy rotation curves from their baryons with
the geometric bridge law and tests surface density formulas for the
rotation curve exponent.

Contents

Version 0.3

  Program overview
  Command line usage
  Configuration
  File formats
  Algorithm outline


Program overview

The geometric bridge law relates the observed centripetal acceleration of a
galaxy to the Newtonian acceleration of its baryons,

  g_obs = sqrt(g_bar² + a0·g_bar)

with a0 = 3702.84 (km/s)²/kpc.  At high acceleration it recovers Newton, at
low acceleration it gives flat rotation curves and the baryonic Tully-Fisher
relation.  There are no per galaxy halo parameters.  The only free
parameters are the stellar mass-to-light ratios of disk and bulge, and the
benchmark also runs with them fixed at 0.5.

Input is a mass model catalog in the SPARC format, one line per radius of
each galaxy.  Output is a per galaxy table comparing the bridge with
Newtonian baryons and with the radial acceleration relation, and a summary.

Sample run:

  geobridge benchmark MassModels_Lelli2016c.mrt.gz -o results

prints

  Rotation curve benchmark, 175 of 175 galaxies
  Catalog fingerprint ...

  Formula                       Median RMS (km/s)
  Newton (no dark matter)       ...
  RAR                           ...
  Geometric bridge, fixed M/L   ...
  Geometric bridge, fitted M/L  ...

and writes results/sparc_results.csv and results/summary.txt.  The
fingerprint is a hash of the uncompressed catalog.  Two runs with the same
fingerprint and configuration give identical results.


Command line usage

  geobridge benchmark <catalog> [-o dir] [-q]
  geobridge galaxy <catalog> <name> [--fixed] [--plot prefix]
  geobridge compare [-o dir]
  geobridge correlate [-o dir]
  geobridge validate [-o dir]
  geobridge selftest
  geobridge version

All commands accept --config <file> and --debug.  Log messages go to
stderr, results to stdout and the output directory.

Galaxy fits one galaxy and reports the ratios, RMS residual, R², flat
velocity and the halo boundary radius r_halo = v_flat²/a0.  With --plot it
writes prefix_curve.png and prefix_boost.png.

Compare, correlate and validate run the surface density studies on built in
literature samples.  Compare scores the original formula
α = 1.972 - 0.487·log10(Σ) against the three phase refinement.  Correlate
rederives the formula by regression on thirty galaxies.  Validate is a blind
test on LITTLE THINGS dwarfs and GHASP spirals.

Selftest checks the Newton limit, the weak field limit, the crossover at
g_bar = a0 and the Tully-Fisher identity, then fits ten synthetic galaxies
and checks that the ratios they were made with are recovered.


Configuration

The configuration file is YAML, by default geobridge.yaml in the working
directory.  The default file is optional.  A file named with --config must
exist.  All keys are optional:

  a0: 3702.84
  g: 4.302e-6
  ml:
    disk: 0.5        # fit starting point
    bulge: 0.7
    fixed: 0.5       # zero parameter benchmark
  bounds:
    disk: [0.05, 6]
    bulge: [0.05, 8]
  fit:
    xatol: 1e-4
    fatol: 1e-4
    max_iter: 800
    max_iter_single: 400
    min_points: 3
  output: results
  seed: 3


File formats

The catalog has whitespace separated columns

  Galaxy D R Vobs e_Vobs Vgas Vdisk Vbul SBdisk [SBbul]

with distance in Mpc, radius in kpc and velocities in km/s.  Lines starting
with # and blank lines are ignored, as are lines with fewer than nine fields
or unparseable numbers.  The file may be compressed with gzip or zstd,
recognized by content rather than name.

Points are used only if V_obs > 1 km/s, e_Vobs > 0 and R > 0.  Galaxies
with fewer than min_points such points are skipped.


Algorithm outline

1.  Baryonic velocity v_bar² = v_gas·|v_gas| + Υ_disk·v_disk² + Υ_bul·v_bul²,
clamped at zero.  Gas may contribute negatively.

2.  g_bar = v_bar²/r, with r floored at 1e-6 kpc and g_bar at 1e-20.  The
bridge law gives g_obs and the prediction is v = sqrt(g_obs·r).

3.  Ratios are fitted by bounded Nelder-Mead minimization of
χ² = Σ((v_obs - v)/max(e_v, 0.5))².  Points outside the bounds cost 1e12,
and the best in-bounds point seen is returned, so fitted ratios always lie
within the bounds.

-------------
Public domain.
*/
package main
