package testdata

import (
	"git.lost.host/meutraa/affstat/internal/game"
	"git.lost.host/meutraa/affstat/internal/parser"
)

// Chart is a small but complete chart exercising every command kind,
// a connected arc pair, a skyline with arctaps, and both a noinput and
// a tagged timing group.
const Chart = `AudioOffset:160
TimingPointDensityFactor:1.00
-
timing(0,126.00,4.00);
(1904,2);
(2142,3);
hold(2380,3333,1);
arc(2380,3333,0.00,1.00,si,0.00,0.00,0,none,false);
arc(3333,4285,1.00,0.50,so,0.00,0.50,0,none,false);
arc(2380,3333,0.25,0.75,s,1.00,1.00,0,none,true)[arctap(2380),arctap(2856)];
flick(4000,0.50,0.50,1.00,-0.50);
scenecontrol(0,trackdisplay,255.00,0);
camera(2380,24.76,0.00,0.00,0.00,0.00,0.00,l,1);
timinggroup(noinput){
  timing(0,126.00,4.00);
  (99999,1);
};
timinggroup(fadingholds_anglex){
  timing(0,252.00,4.00);
  (2380,4);
  hold(2856,3333,2);
};
`

func GetChart() (*game.Chart, error) {
	return parser.Parse(Chart)
}
