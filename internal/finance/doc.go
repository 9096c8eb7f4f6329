// Package finance contains the pure calculators behind the tracker: the
// historical inflation table, amortization, appreciation and ROI, MIRR,
// multi-year projections and portfolio aggregation.
//
// Every function here is total over its documented input domain and has no
// side effects. Rates are percentages at the function boundary (3.5 means
// 3.5%) and monetary arguments are major currency units. Results are rounded
// only when they are returned:
//   - percentages to 2 decimals
//   - factors to 3 decimals
//   - money to cents
//   - fractional rates (MIRR) to 6 decimals
package finance
